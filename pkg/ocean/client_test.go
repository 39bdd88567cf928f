package ocean_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bluetide-io/bluetide/pkg/ocean"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("requires a token", func(t *testing.T) {
		t.Parallel()

		client, err := ocean.New("")
		require.ErrorIs(t, err, ocean.ErrTokenRequired)
		assert.Nil(t, client)
	})

	t.Run("rejects an unusable endpoint", func(t *testing.T) {
		t.Parallel()

		client, err := ocean.New("test-token", ocean.WithEndpoint("not a url"))
		require.ErrorIs(t, err, ocean.ErrInvalidEndpoint)
		assert.Nil(t, client)
	})

	t.Run("defaults to the production endpoint", func(t *testing.T) {
		t.Parallel()

		client, err := ocean.New("test-token")
		require.NoError(t, err)
		assert.NotNil(t, client)
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestExecute(t *testing.T) {
	t.Parallel()

	t.Run("decodes a collection envelope", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/volumes", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "Bearer test-token", request.Header.Get("Authorization"))

			_, _ = writer.Write([]byte(`{"volumes":[{"id":"vol-1","name":"data"},{"id":"vol-2","name":"logs"}]}`))
		}))
		defer server.Close()

		client, err := ocean.New("test-token", ocean.WithEndpoint(server.URL))
		require.NoError(t, err)

		volumes, err := ocean.Execute(context.Background(), client, ocean.ListVolumes())
		require.NoError(t, err)
		require.Len(t, volumes, 2)
		assert.Equal(t, "vol-1", volumes[0].ID)
		assert.Equal(t, "logs", volumes[1].Name)
	})

	t.Run("decodes a single-record envelope", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/volumes/abc123", request.URL.Path)

			_, _ = writer.Write([]byte(`{"volume":{"id":"abc123","name":"data","size_gigabytes":100}}`))
		}))
		defer server.Close()

		client, err := ocean.New("test-token", ocean.WithEndpoint(server.URL))
		require.NoError(t, err)

		volume, err := ocean.Execute(context.Background(), client, ocean.GetVolume("abc123").Req())
		require.NoError(t, err)
		assert.Equal(t, "abc123", volume.ID)
		assert.Equal(t, 100, volume.SizeGigabytes)
	})

	t.Run("sends the encoded body for creates", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "/volumes/abc123/actions", request.URL.Path)

			var body map[string]interface{}

			err := json.NewDecoder(request.Body).Decode(&body)
			require.NoError(t, err)
			assert.Equal(t, "resize", body["type"])
			assert.InEpsilon(t, float64(100), body["size_gigabytes"], 0.001)

			writer.WriteHeader(http.StatusCreated)
			_, _ = writer.Write([]byte(`{"action":{"id":7,"status":"in-progress","type":"resize"}}`))
		}))
		defer server.Close()

		client, err := ocean.New("test-token", ocean.WithEndpoint(server.URL))
		require.NoError(t, err)

		action, err := ocean.Execute(context.Background(), client, ocean.GetVolume("abc123").Resize(100))
		require.NoError(t, err)
		assert.Equal(t, 7, action.ID)
		assert.Equal(t, "in-progress", action.Status)
	})

	t.Run("update maps to PUT", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "PUT", request.Method)
			assert.Equal(t, "/account/keys/512189", request.URL.Path)

			_, _ = writer.Write([]byte(`{"ssh_key":{"id":512189,"name":"renamed"}}`))
		}))
		defer server.Close()

		client, err := ocean.New("test-token", ocean.WithEndpoint(server.URL))
		require.NoError(t, err)

		key, err := ocean.Execute(context.Background(), client, ocean.GetSSHKey("512189").Update("renamed"))
		require.NoError(t, err)
		assert.Equal(t, "renamed", key.Name)
	})

	t.Run("delete succeeds on 204 with no payload", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "DELETE", request.Method)
			assert.Equal(t, "/volumes/abc123", request.URL.Path)

			writer.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		client, err := ocean.New("test-token", ocean.WithEndpoint(server.URL))
		require.NoError(t, err)

		_, err = ocean.Execute(context.Background(), client, ocean.DeleteVolume("abc123"))
		require.NoError(t, err)
	})

	t.Run("non-success status becomes an API error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"id":"not_found","message":"The resource you were accessing could not be found."}`))
		}))
		defer server.Close()

		client, err := ocean.New("test-token", ocean.WithEndpoint(server.URL))
		require.NoError(t, err)

		_, err = ocean.Execute(context.Background(), client, ocean.GetVolume("missing").Req())
		require.Error(t, err)
		assert.True(t, ocean.IsNotFound(err))

		apiErr := &ocean.APIError{}
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
		assert.Equal(t, "not_found", apiErr.ID)
		assert.Equal(t, "The resource you were accessing could not be found.", apiErr.Message)
	})

	t.Run("unparseable error payload keeps the raw body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusBadGateway)
			_, _ = writer.Write([]byte("upstream exploded"))
		}))
		defer server.Close()

		client, err := ocean.New("test-token", ocean.WithEndpoint(server.URL))
		require.NoError(t, err)

		_, err = ocean.Execute(context.Background(), client, ocean.GetAccount())
		require.Error(t, err)

		apiErr := &ocean.APIError{}
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
		assert.Equal(t, "unknown", apiErr.ID)
		assert.Equal(t, "upstream exploded", apiErr.Message)
	})

	t.Run("missing envelope key is a decode error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			// Success status, valid JSON, wrong envelope.
			_, _ = writer.Write([]byte(`{"droplet":{"id":1}}`))
		}))
		defer server.Close()

		client, err := ocean.New("test-token", ocean.WithEndpoint(server.URL))
		require.NoError(t, err)

		_, err = ocean.Execute(context.Background(), client, ocean.GetVolume("abc123").Req())
		require.Error(t, err)
		assert.True(t, ocean.IsDecode(err))
		require.ErrorIs(t, err, ocean.ErrMissingEnvelopeKey)
	})

	t.Run("malformed response body is a decode error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte("<html>not json</html>"))
		}))
		defer server.Close()

		client, err := ocean.New("test-token", ocean.WithEndpoint(server.URL))
		require.NoError(t, err)

		_, err = ocean.Execute(context.Background(), client, ocean.ListVolumes())
		require.Error(t, err)
		assert.True(t, ocean.IsDecode(err))
	})

	t.Run("wrong value shape is a decode error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			// Right key, scalar where an object belongs.
			_, _ = writer.Write([]byte(`{"volume":"surprise"}`))
		}))
		defer server.Close()

		client, err := ocean.New("test-token", ocean.WithEndpoint(server.URL))
		require.NoError(t, err)

		_, err = ocean.Execute(context.Background(), client, ocean.GetVolume("abc123").Req())
		require.Error(t, err)
		assert.True(t, ocean.IsDecode(err))
	})

	t.Run("connection failure is a transport error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {}))
		server.Close()

		client, err := ocean.New("test-token", ocean.WithEndpoint(server.URL))
		require.NoError(t, err)

		_, err = ocean.Execute(context.Background(), client, ocean.ListVolumes())
		require.Error(t, err)
		assert.True(t, ocean.IsTransport(err))
		assert.False(t, ocean.IsNotFound(err))
	})

	t.Run("context cancellation is a transport error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client, err := ocean.New("test-token", ocean.WithEndpoint(server.URL))
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err = ocean.Execute(ctx, client, ocean.ListVolumes())
		require.Error(t, err)
		assert.True(t, ocean.IsTransport(err))
	})
}
