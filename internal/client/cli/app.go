// Package cli implements the interactive menu client for the users API.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/usersvc/internal/client/api"
	"github.com/dmitrijs2005/usersvc/internal/client/config"
)

type App struct {
	config *config.Config
	api    *api.Client
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	return &App{
		config: c,
		api:    api.NewClient(c),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {

	printlnFn("Iniciando cliente API REST...")

	if err := a.api.Ping(ctx); err != nil {
		printlnFn("No se pudo conectar con la API:", err.Error())
		printlnFn("Asegúrese de que el servidor esté ejecutándose en", a.config.BaseURL)
		return
	}
	printlnFn("Conexión con la API establecida correctamente.")

	runMenu(ctx, a, a.reader)
}
