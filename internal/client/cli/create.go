package cli

import "context"

// Create interactively collects the fields of a new user and submits them.
// Nombre and email are mandatory on the server side, so they are collected
// with required prompts; the rest may be left blank and is then omitted.
func (a *App) Create(ctx context.Context) error {

	printlnFn("Creando nuevo usuario:")

	nombre, err := GetRequiredText(a.reader, "Ingrese el nombre del usuario", a.out)
	if err != nil {
		return err
	}
	email, err := GetRequiredText(a.reader, "Ingrese el email del usuario", a.out)
	if err != nil {
		return err
	}

	fields := map[string]any{
		"nombre": nombre,
		"email":  email,
	}

	apellido, err := GetSimpleText(a.reader, "Ingrese el apellido (opcional)", a.out)
	if err != nil {
		return err
	}
	if apellido != "" {
		fields["apellido"] = apellido
	}

	edad, ok, err := GetOptionalInteger(a.reader, "Ingrese la edad (opcional)", a.out)
	if err != nil {
		return err
	}
	if ok {
		fields["edad"] = edad
	}

	for _, opt := range []struct {
		key    string
		prompt string
	}{
		{"telefono", "Ingrese el teléfono (opcional)"},
		{"ciudad", "Ingrese la ciudad (opcional)"},
	} {
		value, err := GetSimpleText(a.reader, opt.prompt, a.out)
		if err != nil {
			return err
		}
		if value != "" {
			fields[opt.key] = value
		}
	}

	env, status, err := a.api.CreateUser(ctx, fields)
	if err != nil {
		return err
	}
	return printEnvelope(env, status)
}
