package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the menu needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	ListAll(ctx context.Context) error
	GetByID(ctx context.Context) error
	Create(ctx context.Context) error
	ReplaceFull(ctx context.Context) error
	MergePartial(ctx context.Context) error
	Delete(ctx context.Context) error
	Paginated(ctx context.Context) error
	SystemInfo(ctx context.Context) error
}

type menuOption struct {
	title string
	run   func(ctx context.Context) error
}

func menuOptions(a execIface) []menuOption {
	return []menuOption{
		{"Obtener todos los usuarios", a.ListAll},
		{"Obtener usuario por ID", a.GetByID},
		{"Crear nuevo usuario", a.Create},
		{"Actualizar usuario completo", a.ReplaceFull},
		{"Actualizar usuario parcialmente", a.MergePartial},
		{"Eliminar usuario", a.Delete},
		{"Listado paginado", a.Paginated},
		{"Información del sistema", a.SystemInfo},
	}
}

func showMenu(options []menuOption) {
	printlnFn("\n" + strings.Repeat("=", 50))
	printlnFn("CLIENTE API REST - GESTIÓN DE USUARIOS")
	printlnFn(strings.Repeat("=", 50))
	for i, opt := range options {
		printlnFn(fmt.Sprintf("%d. %s", i+1, opt.title))
	}
	printlnFn(fmt.Sprintf("%d. Salir", len(options)+1))
	printlnFn(strings.Repeat("=", 50))
}

// runMenu starts the interactive loop: it shows the numbered menu, reads one
// choice per iteration and dispatches to methods on 'a'. The loop exits on
// reader EOF or when the user picks the exit option.
//
// The reader is the same buffered reader the command handlers prompt on, so
// no input is lost between the menu and a command's own questions.
//
// Errors returned by command handlers are reported but never abort the loop.
func runMenu(ctx context.Context, a execIface, reader *bufio.Reader) {
	options := menuOptions(a)

	for {
		showMenu(options)
		printlnFn("Seleccione una opción:")
		line, readErr := reader.ReadString('\n')
		choice := strings.TrimSpace(line)

		if choice != "" {
			if choice == fmt.Sprint(len(options)+1) {
				printlnFn("¡Gracias por usar el cliente API REST!")
				return
			}

			idx := -1
			for i := range options {
				if choice == fmt.Sprint(i+1) {
					idx = i
					break
				}
			}
			if idx < 0 {
				printlnFn(fmt.Sprintf("Opción no válida. Por favor, seleccione una opción del 1 al %d.", len(options)+1))
			} else {
				printlnFn("Ejecutando:", options[idx].title)
				if err := options[idx].run(ctx); err != nil {
					printlnFn("Error:", err.Error())
				}
			}
		}

		if readErr != nil {
			return
		}
	}
}
