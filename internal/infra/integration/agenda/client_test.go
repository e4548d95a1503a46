package agenda

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCitasDelDia(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/citas", r.URL.Path)
		assert.Equal(t, "2025-10-22", r.URL.Query().Get("fecha"))
		assert.Equal(t, "SEDE NORTE", r.URL.Query().Get("sede"))
		assert.Equal(t, "Bearer token-agenda", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[
			{"id":4512,"hora":755,"ampm":"AM","nombre":"MARIA LOPEZ","telefono":"3001112233","requerida":"2025-10-22","medico":"DR. GOMEZ","sede":"SEDE NORTE","consultorio":"201","tipo":"","entidad":"","observacion":"","impresa":null},
			{"id":4513,"hora":1130,"ampm":"AM","nombre":"PEDRO RUIZ","telefono":"","requerida":"2025-10-22","medico":"DR. GOMEZ","sede":"SEDE NORTE","consultorio":"201"}
		]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "token-agenda")

	citas, err := c.CitasDelDia(context.Background(), "2025-10-22", "SEDE NORTE")

	require.NoError(t, err)
	require.Len(t, citas, 2)
	assert.Equal(t, int64(4512), citas[0].ID)
	assert.Equal(t, 755, citas[0].Hora)
	assert.Equal(t, "MARIA LOPEZ", citas[0].Nombre)
	assert.Equal(t, "", citas[1].Telefono)
}

func TestCitasDelDiaErrorDeAPI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")

	citas, err := c.CitasDelDia(context.Background(), "2025-10-22", "")

	assert.Error(t, err)
	assert.Nil(t, citas)
	assert.Contains(t, err.Error(), "status 500")
}

func TestCitasDelDiaLoteVacio(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")

	citas, err := c.CitasDelDia(context.Background(), "2025-10-22", "")

	require.NoError(t, err)
	assert.Empty(t, citas)
}
