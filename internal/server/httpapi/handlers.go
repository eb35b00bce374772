package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/dmitrijs2005/usersvc/internal/common"
	"github.com/dmitrijs2005/usersvc/internal/logging"
	"github.com/dmitrijs2005/usersvc/internal/server/config"
	"github.com/dmitrijs2005/usersvc/internal/server/models"
	"github.com/dmitrijs2005/usersvc/internal/server/repositories/users"
)

// Handler validates inbound requests, delegates to the repository and maps
// outcomes onto the response envelope. It never builds SQL and the
// repository never sees transport concerns.
type Handler struct {
	repo   users.Repository
	config *config.Config
	logger logging.Logger
}

func NewHandler(repo users.Repository, cfg *config.Config, logger logging.Logger) *Handler {
	return &Handler{repo: repo, config: cfg, logger: logger.With("module", "httpapi")}
}

// repoFail converts a repository error into envelope + status. User-facing
// text is chosen here from the error kind; raw driver text never leaks.
func (h *Handler) repoFail(r *http.Request, err error) (Envelope, int) {
	switch {
	case errors.Is(err, common.ErrNotFound):
		return fail("Usuario no encontrado"), http.StatusNotFound
	case errors.Is(err, common.ErrDuplicateEmail):
		return fail("El email ya existe"), http.StatusBadRequest
	case errors.Is(err, common.ErrValidation):
		return fail("No hay campos válidos para actualizar"), http.StatusBadRequest
	default:
		h.logger.Error(r.Context(), "repository failure", "error", err.Error())
		return fail("Error interno del servidor"), http.StatusInternalServerError
	}
}

func badRequest(message string) (Envelope, int) {
	return fail(message), http.StatusBadRequest
}

// parseID extracts the {id} path segment. The route leaves the segment
// untyped so a non-numeric id reaches this check and produces a 400 with an
// explanation rather than a router-level 404.
func parseID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

const errInvalidID = "El id debe ser un número entero positivo"

// decodeBody reads a JSON object body into UserFields. It enforces, in
// order: JSON content type (415), body presence (400), well-formed JSON
// (400). A nil Envelope pointer means the body was accepted.
func decodeBody(r *http.Request) (models.UserFields, *Envelope, int) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		env := fail("El Content-Type debe ser application/json")
		return nil, &env, http.StatusUnsupportedMediaType
	}

	fields := models.UserFields{}
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		var env Envelope
		if errors.Is(err, io.EOF) {
			env = fail("No hay datos en la petición")
		} else {
			env = fail("El cuerpo de la petición no es JSON válido")
		}
		return nil, &env, http.StatusBadRequest
	}

	return fields, nil, 0
}

// requiredString reports whether fields carries a non-empty string under key.
func requiredString(fields models.UserFields, key string) bool {
	s, ok := fields[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

// SystemInfoData is the payload of the root endpoint. The database password
// is deliberately absent.
type SystemInfoData struct {
	BaseDatos         string            `json:"base_datos"`
	VersionPostgreSQL string            `json:"version_postgresql"`
	TotalUsuarios     int64             `json:"total_usuarios"`
	Configuracion     ConfigInfo        `json:"configuracion"`
	Endpoints         map[string]string `json:"endpoints"`
}

type ConfigInfo struct {
	Host     string `json:"host"`
	Database string `json:"database"`
	Puerto   string `json:"puerto"`
}

func (h *Handler) SystemInfo(r *http.Request) (Envelope, int) {
	stats, err := h.repo.Stats(r.Context())
	if err != nil {
		return h.repoFail(r, err)
	}

	data := SystemInfoData{
		BaseDatos:         "PostgreSQL",
		VersionPostgreSQL: stats.VersionPostgreSQL,
		TotalUsuarios:     stats.TotalUsuarios,
		Configuracion: ConfigInfo{
			Host:     h.config.DBHost,
			Database: h.config.DBName,
			Puerto:   h.config.DBPort,
		},
		Endpoints: map[string]string{
			"GET /usuarios":          "Obtener todos los usuarios",
			"GET /usuarios/{id}":     "Obtener usuario por ID",
			"GET /usuarios/paginado": "Obtener usuarios paginados",
			"POST /usuarios":         "Crear nuevo usuario",
			"PUT /usuarios/{id}":     "Actualizar usuario completo",
			"PATCH /usuarios/{id}":   "Actualizar usuario parcial",
			"DELETE /usuarios/{id}":  "Eliminar usuario",
		},
	}

	return ok(data, "API de Usuarios con PostgreSQL"), http.StatusOK
}

func (h *Handler) ListUsers(r *http.Request) (Envelope, int) {
	usuarios, err := h.repo.ListAll(r.Context())
	if err != nil {
		return h.repoFail(r, err)
	}
	return ok(usuarios, ""), http.StatusOK
}

func (h *Handler) GetUser(r *http.Request) (Envelope, int) {
	id, valid := parseID(r)
	if !valid {
		return badRequest(errInvalidID)
	}

	usuario, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		return h.repoFail(r, err)
	}
	return ok(usuario, ""), http.StatusOK
}

func (h *Handler) CreateUser(r *http.Request) (Envelope, int) {
	fields, env, status := decodeBody(r)
	if env != nil {
		return *env, status
	}

	if !requiredString(fields, "nombre") || !requiredString(fields, "email") {
		return badRequest("Nombre y email son requeridos")
	}

	usuario, err := h.repo.Create(r.Context(), fields)
	if err != nil {
		return h.repoFail(r, err)
	}
	return ok(usuario, "Usuario creado correctamente"), http.StatusCreated
}

func (h *Handler) ReplaceUser(r *http.Request) (Envelope, int) {
	id, valid := parseID(r)
	if !valid {
		return badRequest(errInvalidID)
	}

	fields, env, status := decodeBody(r)
	if env != nil {
		return *env, status
	}

	usuario, err := h.repo.Replace(r.Context(), id, fields)
	if err != nil {
		return h.repoFail(r, err)
	}
	return ok(usuario, "Usuario actualizado correctamente"), http.StatusOK
}

func (h *Handler) MergeUser(r *http.Request) (Envelope, int) {
	id, valid := parseID(r)
	if !valid {
		return badRequest(errInvalidID)
	}

	fields, env, status := decodeBody(r)
	if env != nil {
		return *env, status
	}

	result, err := h.repo.MergeUpdate(r.Context(), id, fields)
	if err != nil {
		return h.repoFail(r, err)
	}
	return ok(result, result.Mensaje), http.StatusOK
}

func (h *Handler) DeleteUser(r *http.Request) (Envelope, int) {
	id, valid := parseID(r)
	if !valid {
		return badRequest(errInvalidID)
	}

	mensaje, err := h.repo.Delete(r.Context(), id)
	if err != nil {
		return h.repoFail(r, err)
	}
	return Envelope{Success: true, Message: mensaje}, http.StatusOK
}

func (h *Handler) PaginateUsers(r *http.Request) (Envelope, int) {
	q := r.URL.Query()

	pagina := 1
	if s := q.Get("pagina"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return badRequest("El parámetro pagina debe ser un número entero")
		}
		pagina = v
	}

	limite := 10
	if s := q.Get("limite"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return badRequest("El parámetro limite debe ser un número entero")
		}
		limite = v
	}

	if pagina < 1 {
		return badRequest("El parámetro pagina debe ser mayor o igual a 1")
	}
	if limite < 1 || limite > 100 {
		return badRequest("El parámetro limite debe estar entre 1 y 100")
	}

	page, err := h.repo.Paginate(r.Context(), pagina, limite)
	if err != nil {
		return h.repoFail(r, err)
	}
	return ok(page, ""), http.StatusOK
}
