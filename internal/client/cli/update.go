package cli

import "context"

// ReplaceFull collects a complete set of user fields and sends a PUT update.
func (a *App) ReplaceFull(ctx context.Context) error {
	id, err := GetInteger(a.reader, "Ingrese el ID del usuario a actualizar", a.out)
	if err != nil {
		return err
	}

	printlnFn("Actualizando usuario completo:")

	nombre, err := GetRequiredText(a.reader, "Ingrese el nuevo nombre", a.out)
	if err != nil {
		return err
	}
	apellido, err := GetRequiredText(a.reader, "Ingrese el nuevo apellido", a.out)
	if err != nil {
		return err
	}
	email, err := GetRequiredText(a.reader, "Ingrese el nuevo email", a.out)
	if err != nil {
		return err
	}
	edad, err := GetInteger(a.reader, "Ingrese la nueva edad", a.out)
	if err != nil {
		return err
	}

	fields := map[string]any{
		"nombre":   nombre,
		"apellido": apellido,
		"email":    email,
		"edad":     edad,
	}

	env, status, err := a.api.ReplaceUser(ctx, id, fields)
	if err != nil {
		return err
	}
	return printEnvelope(env, status)
}

// MergePartial collects only the fields the user wants to change and sends a
// PATCH update. Blank answers are omitted; an all-blank form is rejected
// locally without a request.
func (a *App) MergePartial(ctx context.Context) error {
	id, err := GetInteger(a.reader, "Ingrese el ID del usuario a actualizar", a.out)
	if err != nil {
		return err
	}

	printlnFn("Actualización parcial (deje en blanco los campos que no desea cambiar):")

	fields := map[string]any{}

	for _, opt := range []struct {
		key    string
		prompt string
	}{
		{"nombre", "Nuevo nombre (opcional)"},
		{"apellido", "Nuevo apellido (opcional)"},
		{"email", "Nuevo email (opcional)"},
		{"telefono", "Nuevo teléfono (opcional)"},
		{"ciudad", "Nueva ciudad (opcional)"},
		{"profesion", "Nueva profesión (opcional)"},
		{"salario", "Nuevo salario (opcional)"},
	} {
		value, err := GetSimpleText(a.reader, opt.prompt, a.out)
		if err != nil {
			return err
		}
		if value != "" {
			fields[opt.key] = value
		}
	}

	edad, ok, err := GetOptionalInteger(a.reader, "Nueva edad (opcional)", a.out)
	if err != nil {
		return err
	}
	if ok {
		fields["edad"] = edad
	}

	if len(fields) == 0 {
		printlnFn("No se proporcionaron campos para actualizar.")
		return nil
	}

	env, status, err := a.api.MergeUser(ctx, id, fields)
	if err != nil {
		return err
	}
	return printEnvelope(env, status)
}
