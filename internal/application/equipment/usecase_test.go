package equipment_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invenmovil/inventario-api/internal/application/dto"
	"github.com/invenmovil/inventario-api/internal/application/equipment"
	"github.com/invenmovil/inventario-api/internal/domain"
	"github.com/invenmovil/inventario-api/internal/domain/entity"
	"github.com/invenmovil/inventario-api/internal/domain/repository"
	"github.com/invenmovil/inventario-api/internal/infrastructure/storage"
	"github.com/invenmovil/inventario-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeEquipoRepo struct {
	equipos map[string]*entity.Equipo
	creates int
}

func newFakeEquipoRepo() *fakeEquipoRepo {
	return &fakeEquipoRepo{equipos: make(map[string]*entity.Equipo)}
}

func (r *fakeEquipoRepo) Create(eq *entity.Equipo) error {
	r.creates++
	cp := *eq
	r.equipos[eq.ID] = &cp
	return nil
}

func (r *fakeEquipoRepo) GetByID(inventarioID, equipoID string) (*entity.Equipo, error) {
	eq, ok := r.equipos[equipoID]
	if !ok || eq.InventarioID != inventarioID {
		return nil, nil
	}
	cp := *eq
	return &cp, nil
}

func (r *fakeEquipoRepo) ListByInventario(inventarioID string) ([]*entity.Equipo, error) {
	var list []*entity.Equipo
	for _, eq := range r.equipos {
		if eq.InventarioID == inventarioID {
			cp := *eq
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *fakeEquipoRepo) Update(eq *entity.Equipo) error {
	if _, ok := r.equipos[eq.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *eq
	r.equipos[eq.ID] = &cp
	return nil
}

func (r *fakeEquipoRepo) Delete(inventarioID, equipoID string) error {
	eq, ok := r.equipos[equipoID]
	if !ok || eq.InventarioID != inventarioID {
		return domain.ErrNotFound
	}
	delete(r.equipos, equipoID)
	return nil
}

type fakeInvRepo struct {
	inventarios map[string]*entity.Inventario
}

func newFakeInvRepo(invs ...*entity.Inventario) *fakeInvRepo {
	r := &fakeInvRepo{inventarios: make(map[string]*entity.Inventario)}
	for _, inv := range invs {
		r.inventarios[inv.ID] = inv
	}
	return r
}

func (r *fakeInvRepo) Create(inv *entity.Inventario) error {
	r.inventarios[inv.ID] = inv
	return nil
}

func (r *fakeInvRepo) GetByID(id string) (*entity.Inventario, error) {
	inv, ok := r.inventarios[id]
	if !ok {
		return nil, nil
	}
	return inv, nil
}

func (r *fakeInvRepo) ListByOwner(ownerID string) ([]*entity.Inventario, error) {
	var list []*entity.Inventario
	for _, inv := range r.inventarios {
		if inv.CreatedBy == ownerID {
			list = append(list, inv)
		}
	}
	return list, nil
}

func (r *fakeInvRepo) ListAll() ([]*entity.Inventario, error) {
	var list []*entity.Inventario
	for _, inv := range r.inventarios {
		list = append(list, inv)
	}
	return list, nil
}

func (r *fakeInvRepo) IncrementTotalEquipos(id string, delta int) error {
	inv, ok := r.inventarios[id]
	if !ok {
		return domain.ErrNotFound
	}
	inv.TotalEquipos += delta
	return nil
}

// fakeTx ejecuta el callback con los mismos repos, sin transacción real.
type fakeTx struct {
	equipoRepo repository.EquipoRepository
	invRepo    repository.InventarioRepository
}

func (t *fakeTx) Run(_ context.Context, fn func(repository.EquipoRepository, repository.InventarioRepository) error) error {
	return fn(t.equipoRepo, t.invRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

const testInventarioID = "inv-001"

func buildUseCase(t *testing.T) (*equipment.EquipoUseCase, *fakeEquipoRepo, *fakeInvRepo, *storage.MemoryStore) {
	t.Helper()
	equipoRepo := newFakeEquipoRepo()
	invRepo := newFakeInvRepo(&entity.Inventario{
		ID:        testInventarioID,
		Mes:       "Agosto",
		Anio:      2026,
		Localidad: "Bodega Central",
		CreatedBy: "user-1",
		IsActive:  true,
	})
	blobs := storage.NewMemoryStore()
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	uc := equipment.NewEquipoUseCase(equipoRepo, invRepo, &fakeTx{equipoRepo: equipoRepo, invRepo: invRepo}, blobs, log)
	return uc, equipoRepo, invRepo, blobs
}

func validImage() *equipment.ImageUpload {
	return &equipment.ImageUpload{Data: []byte("fake-jpeg-bytes"), ContentType: "image/jpeg"}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

// El serial vacío se rechaza antes de tocar repos o storage.
func TestCreate_SerialVacio_RechazaAntesDeIO(t *testing.T) {
	uc, equipoRepo, _, blobs := buildUseCase(t)

	_, err := uc.Create(context.Background(), testInventarioID,
		dto.CreateEquipoRequest{Serial: "   "}, validImage())

	assert.ErrorIs(t, err, domain.ErrSerialRequired)
	assert.Equal(t, 0, equipoRepo.creates, "no debe escribirse nada en el repo")
	assert.Equal(t, 0, blobs.Len(), "no debe subirse ninguna imagen")
}

// El serial se normaliza: trim + mayúsculas.
func TestCreate_NormalizaSerial(t *testing.T) {
	uc, _, invRepo, _ := buildUseCase(t)

	out, err := uc.Create(context.Background(), testInventarioID,
		dto.CreateEquipoRequest{Serial: "  sn001 "}, nil)
	require.NoError(t, err)

	assert.Equal(t, "SN001", out.Equipo.Serial)
	assert.Equal(t, entity.EstadoUsado, out.Equipo.Estado, "estado por defecto es usado")
	assert.Equal(t, 1, invRepo.inventarios[testInventarioID].TotalEquipos,
		"el contador del inventario debe subir a 1")
}

func TestCreate_EstadoInvalido(t *testing.T) {
	uc, equipoRepo, _, _ := buildUseCase(t)

	_, err := uc.Create(context.Background(), testInventarioID,
		dto.CreateEquipoRequest{Serial: "SN001", Estado: "roto"}, nil)

	assert.ErrorIs(t, err, domain.ErrEstadoInvalido)
	assert.Equal(t, 0, equipoRepo.creates)
}

func TestCreate_InventarioInexistente(t *testing.T) {
	uc, _, _, _ := buildUseCase(t)

	_, err := uc.Create(context.Background(), "no-existe",
		dto.CreateEquipoRequest{Serial: "SN001"}, nil)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Con imagen válida el equipo queda con URL pública y el objeto bajo la ruta
// del inventario.
func TestCreate_ConImagen_GuardaURL(t *testing.T) {
	uc, _, _, blobs := buildUseCase(t)

	out, err := uc.Create(context.Background(), testInventarioID,
		dto.CreateEquipoRequest{Serial: "SN001"}, validImage())
	require.NoError(t, err)

	require.NotNil(t, out.Equipo.ImagenURL)
	assert.Contains(t, *out.Equipo.ImagenURL, "inventarios/"+testInventarioID+"/equipos/SN001_")
	assert.Empty(t, out.Warning)
	assert.Equal(t, 1, blobs.Len())
}

// Una imagen que excede 5MB no se sube, pero el equipo igual se crea sin
// imagen y la respuesta trae el warning.
func TestCreate_ImagenMuyGrande_CreaSinImagenConWarning(t *testing.T) {
	uc, equipoRepo, invRepo, blobs := buildUseCase(t)

	big := &equipment.ImageUpload{
		Data:        bytes.Repeat([]byte("x"), equipment.MaxImageSize+1),
		ContentType: "image/jpeg",
	}
	out, err := uc.Create(context.Background(), testInventarioID,
		dto.CreateEquipoRequest{Serial: "SN001"}, big)
	require.NoError(t, err)

	assert.Nil(t, out.Equipo.ImagenURL, "el equipo queda sin imagen")
	assert.NotEmpty(t, out.Warning)
	assert.Equal(t, 1, equipoRepo.creates)
	assert.Equal(t, 1, invRepo.inventarios[testInventarioID].TotalEquipos)
	assert.Equal(t, 0, blobs.Len())
}

// Si el storage falla, mismo comportamiento: equipo sin imagen + warning.
func TestCreate_StorageFalla_CreaSinImagenConWarning(t *testing.T) {
	uc, equipoRepo, _, blobs := buildUseCase(t)
	blobs.FailPut = errors.New("bucket caído")

	out, err := uc.Create(context.Background(), testInventarioID,
		dto.CreateEquipoRequest{Serial: "SN001"}, validImage())
	require.NoError(t, err)

	assert.Nil(t, out.Equipo.ImagenURL)
	assert.NotEmpty(t, out.Warning)
	assert.Equal(t, 1, equipoRepo.creates)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func crearEquipo(t *testing.T, uc *equipment.EquipoUseCase, serial string, img *equipment.ImageUpload) dto.EquipoResponse {
	t.Helper()
	out, err := uc.Create(context.Background(), testInventarioID,
		dto.CreateEquipoRequest{Serial: serial, Observaciones: "pantalla rayada"}, img)
	require.NoError(t, err)
	return out.Equipo
}

// El merge parcial solo toca los campos presentes.
func TestUpdate_MergeParcial(t *testing.T) {
	uc, _, _, _ := buildUseCase(t)
	eq := crearEquipo(t, uc, "SN001", nil)

	estado := entity.EstadoReparacion
	out, err := uc.Update(context.Background(), testInventarioID, eq.ID,
		dto.UpdateEquipoRequest{Estado: &estado}, nil)
	require.NoError(t, err)

	assert.Equal(t, "SN001", out.Serial, "el serial no cambia si no viene")
	assert.Equal(t, entity.EstadoReparacion, out.Estado)
	assert.Equal(t, "pantalla rayada", out.Observaciones)
}

// En edición, un fallo de subida sí es error: la imagen era el cambio pedido.
func TestUpdate_ImagenFalla_PropagaError(t *testing.T) {
	uc, equipoRepo, _, blobs := buildUseCase(t)
	eq := crearEquipo(t, uc, "SN001", nil)
	blobs.FailPut = errors.New("bucket caído")

	_, err := uc.Update(context.Background(), testInventarioID, eq.ID,
		dto.UpdateEquipoRequest{}, validImage())
	require.Error(t, err)

	guardado, _ := equipoRepo.GetByID(testInventarioID, eq.ID)
	assert.Empty(t, guardado.ImagenURL, "el equipo no debe quedar a medias")
}

func TestUpdate_RemoveImagen(t *testing.T) {
	uc, _, _, _ := buildUseCase(t)
	eq := crearEquipo(t, uc, "SN001", validImage())
	require.NotNil(t, eq.ImagenURL)

	out, err := uc.Update(context.Background(), testInventarioID, eq.ID,
		dto.UpdateEquipoRequest{RemoveImagen: true}, nil)
	require.NoError(t, err)

	assert.Nil(t, out.ImagenURL)
}

func TestUpdate_EquipoInexistente(t *testing.T) {
	uc, _, _, _ := buildUseCase(t)

	_, err := uc.Update(context.Background(), testInventarioID, "no-existe",
		dto.UpdateEquipoRequest{}, nil)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

// El alta y la baja dejan el contador donde empezó.
func TestDelete_DescuentaContador(t *testing.T) {
	uc, _, invRepo, _ := buildUseCase(t)
	eq := crearEquipo(t, uc, "SN001", nil)
	require.Equal(t, 1, invRepo.inventarios[testInventarioID].TotalEquipos)

	require.NoError(t, uc.Delete(context.Background(), testInventarioID, eq.ID))

	assert.Equal(t, 0, invRepo.inventarios[testInventarioID].TotalEquipos)
	_, err := uc.Get(testInventarioID, eq.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Borrar un equipo inexistente no toca el contador.
func TestDelete_Inexistente_NoTocaContador(t *testing.T) {
	uc, _, invRepo, _ := buildUseCase(t)
	crearEquipo(t, uc, "SN001", nil)

	err := uc.Delete(context.Background(), testInventarioID, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 1, invRepo.inventarios[testInventarioID].TotalEquipos)
}

// ──────────────────────────────────────────────────────────────────────────────
// List
// ──────────────────────────────────────────────────────────────────────────────

func TestListByInventario(t *testing.T) {
	uc, _, _, _ := buildUseCase(t)
	crearEquipo(t, uc, "SN001", nil)
	crearEquipo(t, uc, "SN002", nil)

	out, err := uc.ListByInventario(testInventarioID)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Total)

	seriales := make([]string, 0, len(out.Equipos))
	for _, eq := range out.Equipos {
		seriales = append(seriales, eq.Serial)
	}
	assert.ElementsMatch(t, []string{"SN001", "SN002"}, seriales)
}
