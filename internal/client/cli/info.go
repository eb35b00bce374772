package cli

import "context"

// SystemInfo fetches and prints the API root endpoint.
func (a *App) SystemInfo(ctx context.Context) error {
	env, status, err := a.api.SystemInfo(ctx)
	if err != nil {
		return err
	}
	return printEnvelope(env, status)
}
