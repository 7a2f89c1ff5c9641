package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	mem "pet-api/internal/adapters/storage/memory"
	"pet-api/internal/adapters/storage/sqlstore"
	"pet-api/internal/domain/pets"
	"pet-api/internal/domain/pettypes"
	"pet-api/internal/platform/problem"
	"pet-api/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type petBody struct {
	ID      string `json:"Id"`
	Type    string `json:"Type"`
	PetName string `json:"PetName"`
	Alive   bool   `json:"Alive"`
}

func stores(t *testing.T) map[string]func(t *testing.T) pets.Repository {
	t.Helper()
	return map[string]func(t *testing.T) pets.Repository{
		"memory": func(t *testing.T) pets.Repository { return mem.NewPetRepo() },
		"sqlite": func(t *testing.T) pets.Repository {
			ctx := context.Background()
			db, err := sqlstore.Open(ctx, sqlstore.SQLite, "file:"+filepath.Join(t.TempDir(), "pets.db"))
			require.NoError(t, err)
			t.Cleanup(func() { _ = db.Close() })

			_, err = sqlstore.Migrate(ctx, db, sqlstore.SQLite, nil)
			require.NoError(t, err)
			return sqlstore.NewPetsRepo(db, sqlstore.SQLite)
		},
	}
}

func TestHTTP_EndToEnd_PetLifecycle(t *testing.T) {
	for name, newRepo := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ts := httptest.NewServer(router.NewRouter(router.Options{Pets: newRepo(t)}))
			defer ts.Close()

			// 1) Crear
			created := createPet(t, ts.URL, map[string]any{"Type": "dog", "PetName": "Rex", "Alive": true})
			assert.Equal(t, "dog", created.Type)
			assert.Equal(t, "Rex", created.PetName)
			assert.True(t, created.Alive)

			// 2) Leer por id devuelve lo mismo
			{
				st, body := doReq(t, ts.URL, "GET", "/pets/"+created.ID, nil)
				require.Equal(t, http.StatusOK, st, string(body))
				var got petBody
				require.NoError(t, json.Unmarshal(body, &got))
				assert.Equal(t, created, got)
			}

			// 3) Update reemplaza todo menos el id; un Id en el body se ignora
			{
				st, body := doReq(t, ts.URL, "PUT", "/pets/"+created.ID, map[string]any{
					"Id": "other-id", "Type": "cat", "PetName": "Tom", "Alive": false,
				})
				require.Equal(t, http.StatusNoContent, st, string(body))
				assert.Empty(t, body)

				st, body = doReq(t, ts.URL, "GET", "/pets/"+created.ID, nil)
				require.Equal(t, http.StatusOK, st)
				var got petBody
				require.NoError(t, json.Unmarshal(body, &got))
				assert.Equal(t, petBody{ID: created.ID, Type: "cat", PetName: "Tom", Alive: false}, got)

				st, _ = doReq(t, ts.URL, "GET", "/pets/other-id", nil)
				assert.Equal(t, http.StatusNotFound, st)
			}

			// 4) Listar
			{
				createPet(t, ts.URL, map[string]any{"Type": "bird", "PetName": "Tweety", "Alive": true})
				list := listPets(t, ts.URL)
				require.Len(t, list, 2)
				assert.Equal(t, created.ID, list[0].ID)
			}

			// 5) Borrar y volver a borrar
			{
				st, body := doReq(t, ts.URL, "DELETE", "/pets/"+created.ID, nil)
				require.Equal(t, http.StatusOK, st, string(body))
				assert.JSONEq(t, `{"deleted":1}`, string(body))

				st, body = doReq(t, ts.URL, "GET", "/pets/"+created.ID, nil)
				assert.Equal(t, http.StatusNotFound, st)
				assert.Empty(t, body)

				st, _ = doReq(t, ts.URL, "DELETE", "/pets/"+created.ID, nil)
				assert.Equal(t, http.StatusNotFound, st)

				assert.Len(t, listPets(t, ts.URL), 1)
			}
		})
	}
}

func TestHTTP_ListEmpty(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/pets", nil)
	require.Equal(t, http.StatusOK, st)
	assert.JSONEq(t, `[]`, string(body))
}

func TestHTTP_UnknownID(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	valid := map[string]any{"Type": "dog", "PetName": "Rex", "Alive": true}

	st, _ := doReq(t, ts.URL, "GET", "/pets/nope", nil)
	assert.Equal(t, http.StatusNotFound, st)

	st, _ = doReq(t, ts.URL, "PUT", "/pets/nope", valid)
	assert.Equal(t, http.StatusNotFound, st)

	st, _ = doReq(t, ts.URL, "DELETE", "/pets/nope", nil)
	assert.Equal(t, http.StatusNotFound, st)
}

func TestHTTP_DeleteQueryConventionNotServed(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	created := createPet(t, ts.URL, map[string]any{"Type": "dog", "PetName": "Rex"})

	st, _ := doReq(t, ts.URL, "DELETE", "/pets/delete?id="+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, st)
	assert.Len(t, listPets(t, ts.URL), 1)
}

func TestHTTP_ValidationRejectsAndPersistsNothing(t *testing.T) {
	for name, newRepo := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ts := httptest.NewServer(router.NewRouter(router.Options{Pets: newRepo(t)}))
			defer ts.Close()

			st, body := doReq(t, ts.URL, "POST", "/pets", map[string]any{"Type": "", "PetName": "  ", "Alive": true})
			require.Equal(t, http.StatusBadRequest, st, string(body))

			var d problem.Details
			require.NoError(t, json.Unmarshal(body, &d))
			assert.Equal(t, problem.TitleValidation, d.Title)
			assert.Equal(t, http.StatusBadRequest, d.Status)
			assert.Equal(t, []string{"The Type field is required."}, d.Errors["Type"])
			assert.Equal(t, []string{"The PetName field is required."}, d.Errors["PetName"])

			assert.Empty(t, listPets(t, ts.URL))

			// update inválido sobre un id existente no cambia nada
			created := createPet(t, ts.URL, map[string]any{"Type": "dog", "PetName": "Rex", "Alive": true})
			st, _ = doReq(t, ts.URL, "PUT", "/pets/"+created.ID, map[string]any{"Type": "cat", "PetName": ""})
			assert.Equal(t, http.StatusBadRequest, st)

			list := listPets(t, ts.URL)
			require.Len(t, list, 1)
			assert.Equal(t, created, list[0])
		})
	}
}

func TestHTTP_InvalidJSON(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	req, err := http.NewRequest("POST", ts.URL+"/pets", bytes.NewReader([]byte(`{"Type":`)))
	require.NoError(t, err)
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, problem.ContentType, res.Header.Get("Content-Type"))

	var d problem.Details
	require.NoError(t, json.NewDecoder(res.Body).Decode(&d))
	assert.Equal(t, "invalid json", d.Title)
}

func TestHTTP_GetTypes(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/get-types", nil)
	require.Equal(t, http.StatusOK, st)

	var out []pettypes.PetType
	require.NoError(t, json.Unmarshal(body, &out))
	require.Len(t, out, pettypes.SampleSize)
	for _, pt := range out {
		assert.Contains(t, pettypes.Types[:], pt.Type)
		assert.GreaterOrEqual(t, pt.Amount, 0)
		assert.Less(t, pt.Amount, pettypes.MaxAmount)
		assert.GreaterOrEqual(t, pt.Qty, 0)
		assert.LessOrEqual(t, pt.Qty, pt.Amount)
	}
}

func TestHTTP_GetTypes_InjectedSource(t *testing.T) {
	sampler := pettypes.NewSampler(func(n int) int { return n - 1 })
	ts := httptest.NewServer(router.NewRouter(router.Options{Sampler: sampler}))
	defer ts.Close()

	_, body := doReq(t, ts.URL, "GET", "/get-types", nil)
	assert.JSONEq(t, `[
		{"Type":"ferret","Amount":99,"Qty":1},
		{"Type":"ferret","Amount":99,"Qty":1},
		{"Type":"ferret","Amount":99,"Qty":1},
		{"Type":"ferret","Amount":99,"Qty":1},
		{"Type":"ferret","Amount":99,"Qty":1}
	]`, string(body))
}

func TestHTTP_ErrorRoute(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/error", nil)
	require.Equal(t, http.StatusInternalServerError, st)

	var d problem.Details
	require.NoError(t, json.Unmarshal(body, &d))
	assert.Equal(t, problem.TitleInternal, d.Title)
	assert.Equal(t, http.StatusInternalServerError, d.Status)
}

type downRepo struct {
	pets.Repository
}

func (downRepo) Ping(context.Context) error { return errors.New("connection refused") }

func TestHTTP_Health(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		ts := httptest.NewServer(router.NewRouter(router.Options{}))
		defer ts.Close()

		st, body := doReq(t, ts.URL, "GET", "/health", nil)
		require.Equal(t, http.StatusOK, st)
		assert.JSONEq(t, `{"status":"ok"}`, string(body))
	})

	t.Run("store down", func(t *testing.T) {
		ts := httptest.NewServer(router.NewRouter(router.Options{Pets: downRepo{mem.NewPetRepo()}}))
		defer ts.Close()

		st, _ := doReq(t, ts.URL, "GET", "/health", nil)
		assert.Equal(t, http.StatusServiceUnavailable, st)
	})
}

func TestHTTP_RequestIDHeader(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	res, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer res.Body.Close()

	assert.NotEmpty(t, res.Header.Get("X-Request-Id"))
}

func TestHTTP_SwaggerDoc(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/swagger/doc.json", nil)
	require.Equal(t, http.StatusOK, st)
	assert.Contains(t, string(body), "Pet API")
	assert.Contains(t, string(body), "/get-types")
}

func createPet(t *testing.T, baseURL string, payload map[string]any) petBody {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/pets", payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create pet, got %d body=%s", st, string(body))
	}

	var resp petBody
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create pet: missing id body=%s", string(body))
	}
	return resp
}

func listPets(t *testing.T, baseURL string) []petBody {
	t.Helper()

	st, body := doReq(t, baseURL, "GET", "/pets", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list pets, got %d body=%s", st, string(body))
	}

	var out []petBody
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("list pets: %v body=%s", err, string(body))
	}
	return out
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
