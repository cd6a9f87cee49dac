package api

import "context"

// CreateProject provisions a project. Name and email are both
// optional: with neither the server picks a name and returns an
// anonymous key immediately; with an email the key is withheld until
// VerifyNewProject confirms the mailed code.
func (c *Client) CreateProject(ctx context.Context, name, email string) (*NewProjectResponse, error) {
	body := map[string]string{}
	if name != "" {
		body["name"] = name
	}
	if email != "" {
		body["email"] = email
	}
	var out NewProjectResponse
	if err := c.post(ctx, "/api/new", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyNewProject completes email-verified project creation and
// returns the project's first API key.
func (c *Client) VerifyNewProject(ctx context.Context, name, email, code string) (*NewProjectResponse, error) {
	body := map[string]string{"email": email, "code": code}
	if name != "" {
		body["name"] = name
	}
	var out NewProjectResponse
	if err := c.post(ctx, "/api/new/verify", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// InitiateClaim starts attaching an anonymous project to an account.
// The server mails a one-time code to the address.
func (c *Client) InitiateClaim(ctx context.Context, email string) error {
	body := map[string]string{"project": c.project, "email": email}
	return c.post(ctx, "/api/claim/initiate", body, nil)
}

// VerifyClaim finishes a claim with the mailed code. The returned key
// replaces the project's anonymous key.
func (c *Client) VerifyClaim(ctx context.Context, email, code string) (*ClaimResponse, error) {
	body := map[string]string{"project": c.project, "email": email, "code": code}
	var out ClaimResponse
	if err := c.post(ctx, "/api/claim/verify", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SendOTP mails or texts a one-time code to an arbitrary identifier.
// This is the app-level verification endpoint, unrelated to claims.
func (c *Client) SendOTP(ctx context.Context, identifier string) error {
	body := map[string]string{"identifier": identifier}
	return c.post(ctx, c.projectPath("send-otp"), body, nil)
}

// VerifyOTP checks a code previously issued by SendOTP.
func (c *Client) VerifyOTP(ctx context.Context, identifier, code string) (*VerifyOTPResponse, error) {
	body := map[string]string{"identifier": identifier, "code": code}
	var out VerifyOTPResponse
	if err := c.post(ctx, c.projectPath("verify-otp"), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
