package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invenmovil/inventario-api/internal/application/dto"
	"github.com/invenmovil/inventario-api/internal/application/inventory"
	"github.com/invenmovil/inventario-api/internal/domain"
	"github.com/invenmovil/inventario-api/internal/domain/entity"
)

// fakeRepo repositorio en memoria para los tests del caso de uso.
type fakeRepo struct {
	inventarios map[string]*entity.Inventario
	creates     int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{inventarios: make(map[string]*entity.Inventario)}
}

func (r *fakeRepo) Create(inv *entity.Inventario) error {
	r.creates++
	r.inventarios[inv.ID] = inv
	return nil
}

func (r *fakeRepo) GetByID(id string) (*entity.Inventario, error) {
	inv, ok := r.inventarios[id]
	if !ok {
		return nil, nil
	}
	return inv, nil
}

func (r *fakeRepo) ListByOwner(ownerID string) ([]*entity.Inventario, error) {
	var list []*entity.Inventario
	for _, inv := range r.inventarios {
		if inv.CreatedBy == ownerID {
			list = append(list, inv)
		}
	}
	return list, nil
}

func (r *fakeRepo) ListAll() ([]*entity.Inventario, error) {
	var list []*entity.Inventario
	for _, inv := range r.inventarios {
		list = append(list, inv)
	}
	return list, nil
}

func (r *fakeRepo) IncrementTotalEquipos(id string, delta int) error {
	inv, ok := r.inventarios[id]
	if !ok {
		return domain.ErrNotFound
	}
	inv.TotalEquipos += delta
	return nil
}

func validRequest() dto.CreateInventarioRequest {
	return dto.CreateInventarioRequest{
		Mes:       "Agosto",
		Anio:      "2026",
		Estado:    "Antioquia",
		Localidad: "Bodega Central",
	}
}

// Cada campo en blanco produce su propio error y ningún write.
func TestCreate_CamposEnBlanco(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*dto.CreateInventarioRequest)
		field  string
	}{
		{"mes vacio", func(in *dto.CreateInventarioRequest) { in.Mes = "   " }, "mes"},
		{"anio vacio", func(in *dto.CreateInventarioRequest) { in.Anio = "" }, "anio"},
		{"estado vacio", func(in *dto.CreateInventarioRequest) { in.Estado = " " }, "estado"},
		{"localidad vacia", func(in *dto.CreateInventarioRequest) { in.Localidad = "" }, "localidad"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeRepo()
			uc := inventory.NewInventarioUseCase(repo)

			in := validRequest()
			tc.mutate(&in)
			_, err := uc.Create("user-1", "Ana", in)

			var vErr *inventory.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.field, vErr.Field)
			assert.Equal(t, 0, repo.creates, "la validación debe cortar antes del write")
		})
	}
}

func TestCreate_AnioNoNumerico(t *testing.T) {
	repo := newFakeRepo()
	uc := inventory.NewInventarioUseCase(repo)

	in := validRequest()
	in.Anio = "dosmil26"
	_, err := uc.Create("user-1", "Ana", in)

	var vErr *inventory.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "anio", vErr.Field)
	assert.Equal(t, 0, repo.creates)
}

// El inventario nace con contador en cero, activo y con su dueño.
func TestCreate_ValoresIniciales(t *testing.T) {
	repo := newFakeRepo()
	uc := inventory.NewInventarioUseCase(repo)

	in := validRequest()
	in.Localidad = "  Bodega Central  "
	out, err := uc.Create("user-1", "Ana", in)
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, 2026, out.Anio)
	assert.Equal(t, "Bodega Central", out.Localidad, "los campos se recortan")
	assert.Equal(t, "user-1", out.CreatedBy)
	assert.Equal(t, "Ana", out.CreatedByName)
	assert.Equal(t, 0, out.TotalEquipos)
	assert.True(t, out.IsActive)
}

// ListOwn filtra por dueño; ListAll trae todo.
func TestListOwn_SoloDelUsuario(t *testing.T) {
	repo := newFakeRepo()
	uc := inventory.NewInventarioUseCase(repo)

	_, err := uc.Create("user-1", "Ana", validRequest())
	require.NoError(t, err)
	_, err = uc.Create("user-2", "Luis", validRequest())
	require.NoError(t, err)

	propios, err := uc.ListOwn("user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, propios.Total)
	assert.Equal(t, "user-1", propios.Inventarios[0].CreatedBy)

	todos, err := uc.ListAll()
	require.NoError(t, err)
	assert.Equal(t, 2, todos.Total)
}

func TestGetByID_Inexistente(t *testing.T) {
	uc := inventory.NewInventarioUseCase(newFakeRepo())

	_, err := uc.GetByID("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
