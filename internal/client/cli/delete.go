package cli

import (
	"context"
	"fmt"
	"strings"
)

// Delete prompts for a user id, asks for confirmation and sends the delete.
func (a *App) Delete(ctx context.Context) error {
	id, err := GetInteger(a.reader, "Ingrese el ID del usuario a eliminar", a.out)
	if err != nil {
		return err
	}

	prompt := fmt.Sprintf("¿Está seguro de eliminar el usuario %d? (s/N)", id)
	answer, err := GetSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return err
	}

	switch strings.ToLower(answer) {
	case "s", "si", "sí", "y", "yes":
	default:
		printlnFn("Operación cancelada.")
		return nil
	}

	env, status, err := a.api.DeleteUser(ctx, id)
	if err != nil {
		return err
	}
	return printEnvelope(env, status)
}
