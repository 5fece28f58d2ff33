package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/invenmovil/inventario-api/internal/application/auth"
	"github.com/invenmovil/inventario-api/internal/application/inventory"
	"github.com/invenmovil/inventario-api/internal/domain/entity"
	apphttp "github.com/invenmovil/inventario-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de repositorio para tests de handler
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users      map[string]*entity.User // por ID
	failGetter error                   // fuerza error en GetByID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	if r.failGetter != nil {
		return nil, r.failGetter
	}
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) UpdateDisplayName(id, displayName string) error {
	if u, ok := r.users[id]; ok {
		u.DisplayName = displayName
	}
	return nil
}

func (r *fakeUserRepo) UpdatePasswordHash(id, passwordHash string) error {
	if u, ok := r.users[id]; ok {
		u.PasswordHash = passwordHash
	}
	return nil
}

type fakeInventarioRepo struct {
	creates []*entity.Inventario
}

func (r *fakeInventarioRepo) Create(inv *entity.Inventario) error {
	r.creates = append(r.creates, inv)
	return nil
}

func (r *fakeInventarioRepo) GetByID(id string) (*entity.Inventario, error) {
	for _, inv := range r.creates {
		if inv.ID == id {
			return inv, nil
		}
	}
	return nil, nil
}

func (r *fakeInventarioRepo) ListByOwner(ownerID string) ([]*entity.Inventario, error) {
	var out []*entity.Inventario
	for _, inv := range r.creates {
		if inv.CreatedBy == ownerID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (r *fakeInventarioRepo) ListAll() ([]*entity.Inventario, error) {
	return r.creates, nil
}

func (r *fakeInventarioRepo) IncrementTotalEquipos(id string, delta int) error {
	return nil
}

// buildInventarioApp arma la ruta POST /api/inventarios con el middleware de
// auth real y los casos de uso sobre repositorios fake.
func buildInventarioApp(userRepo *fakeUserRepo, invRepo *fakeInventarioRepo) *fiber.App {
	authUC := auth.NewAuthUseCase(userRepo, nil, nil, auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
	})
	invUC := inventory.NewInventarioUseCase(invRepo)
	h := apphttp.NewInventarioHandler(invUC, authUC)

	app := fiber.New()
	app.Post("/api/inventarios", apphttp.AuthMiddleware(testJWTSecret), h.Create)
	return app
}

func postInventario(t *testing.T, app *fiber.App, token string) *http.Response {
	t.Helper()
	body := `{"mes":"3","anio":"2026","estado":"abierto","localidad":"Bodega Central"}`
	req := httptest.NewRequest(http.MethodPost, "/api/inventarios", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create — estampado del nombre del dueño
// ──────────────────────────────────────────────────────────────────────────────

// El nombre visible del perfil se estampa en created_by_name.
func TestCrearInventario_EstampaNombreDelPerfil(t *testing.T) {
	userRepo := newFakeUserRepo()
	userRepo.users[testUserID] = &entity.User{
		ID:          testUserID,
		Email:       "ana@example.com",
		DisplayName: "Ana Gómez",
		Role:        entity.RoleUser,
		Active:      true,
	}
	invRepo := &fakeInventarioRepo{}
	app := buildInventarioApp(userRepo, invRepo)

	resp := postInventario(t, app, tokenForRole(t, entity.RoleUser))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Len(t, invRepo.creates, 1)
	assert.Equal(t, testUserID, invRepo.creates[0].CreatedBy)
	assert.Equal(t, "Ana Gómez", invRepo.creates[0].CreatedByName)
}

// Si el perfil no se puede leer, el inventario se crea igual pero con el uid
// como nombre del dueño, nunca con un nombre vacío.
func TestCrearInventario_PerfilNoDisponible_EstampaUID(t *testing.T) {
	userRepo := newFakeUserRepo()
	userRepo.failGetter = assert.AnError
	invRepo := &fakeInventarioRepo{}
	app := buildInventarioApp(userRepo, invRepo)

	resp := postInventario(t, app, tokenForRole(t, entity.RoleUser))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Len(t, invRepo.creates, 1)
	assert.Equal(t, testUserID, invRepo.creates[0].CreatedByName,
		"sin perfil disponible, created_by_name debe caer al uid")
}

// Un perfil con nombre vacío también cae al uid.
func TestCrearInventario_NombreVacio_EstampaUID(t *testing.T) {
	userRepo := newFakeUserRepo()
	userRepo.users[testUserID] = &entity.User{
		ID:     testUserID,
		Email:  "ana@example.com",
		Role:   entity.RoleUser,
		Active: true,
	}
	invRepo := &fakeInventarioRepo{}
	app := buildInventarioApp(userRepo, invRepo)

	resp := postInventario(t, app, tokenForRole(t, entity.RoleUser))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Len(t, invRepo.creates, 1)
	assert.Equal(t, testUserID, invRepo.creates[0].CreatedByName)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Login — código de error en credenciales inválidas
// ──────────────────────────────────────────────────────────────────────────────

func buildLoginApp(userRepo *fakeUserRepo) *fiber.App {
	authUC := auth.NewAuthUseCase(userRepo, nil, nil, auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
	})
	h := apphttp.NewAuthHandler(authUC)

	app := fiber.New()
	app.Post("/api/auth/login", h.Login)
	return app
}

func postLogin(t *testing.T, app *fiber.App, email, password string) *http.Response {
	t.Helper()
	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// Contraseña incorrecta responde 401 con el código WRONG_PASSWORD.
func TestLogin_PasswordIncorrecta_CodigoWrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secreta123"), bcrypt.MinCost)
	require.NoError(t, err)

	userRepo := newFakeUserRepo()
	userRepo.users[testUserID] = &entity.User{
		ID:           testUserID,
		Email:        "ana@example.com",
		PasswordHash: string(hash),
		DisplayName:  "Ana",
		Role:         entity.RoleUser,
		Active:       true,
	}
	app := buildLoginApp(userRepo)

	resp := postLogin(t, app, "ana@example.com", "otra-clave")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "WRONG_PASSWORD", body["code"])
}

// Un email inexistente responde exactamente igual que una contraseña
// incorrecta: el login no revela si la cuenta existe.
func TestLogin_EmailInexistente_MismaRespuesta(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secreta123"), bcrypt.MinCost)
	require.NoError(t, err)

	userRepo := newFakeUserRepo()
	userRepo.users[testUserID] = &entity.User{
		ID:           testUserID,
		Email:        "ana@example.com",
		PasswordHash: string(hash),
		DisplayName:  "Ana",
		Role:         entity.RoleUser,
		Active:       true,
	}
	app := buildLoginApp(userRepo)

	respDesconocido := postLogin(t, app, "nadie@example.com", "loquesea")
	defer respDesconocido.Body.Close()
	respIncorrecta := postLogin(t, app, "ana@example.com", "otra-clave")
	defer respIncorrecta.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, respDesconocido.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, respIncorrecta.StatusCode)

	var bodyDesconocido, bodyIncorrecta map[string]string
	require.NoError(t, json.NewDecoder(respDesconocido.Body).Decode(&bodyDesconocido))
	require.NoError(t, json.NewDecoder(respIncorrecta.Body).Decode(&bodyIncorrecta))
	assert.Equal(t, bodyIncorrecta, bodyDesconocido,
		"ambos fallos de credenciales deben producir el mismo cuerpo")
}
