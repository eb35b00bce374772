package cli

import "context"

// Paginated asks for page and page size, falling back to the server defaults
// when the answers are left blank.
func (a *App) Paginated(ctx context.Context) error {
	pagina, ok, err := GetOptionalInteger(a.reader, "Ingrese la página (por defecto 1)", a.out)
	if err != nil {
		return err
	}
	if !ok {
		pagina = 1
	}

	limite, ok, err := GetOptionalInteger(a.reader, "Ingrese el límite por página (por defecto 10)", a.out)
	if err != nil {
		return err
	}
	if !ok {
		limite = 10
	}

	env, status, err := a.api.PaginateUsers(ctx, pagina, limite)
	if err != nil {
		return err
	}
	return printEnvelope(env, status)
}
