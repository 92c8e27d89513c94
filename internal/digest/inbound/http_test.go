package inbound

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shandysiswandi/godigest/internal/digest/entity"
	"github.com/shandysiswandi/godigest/internal/digest/usecase"
	"github.com/shandysiswandi/godigest/internal/pkg/config"
	"github.com/shandysiswandi/godigest/internal/pkg/hash"
	"github.com/shandysiswandi/godigest/internal/pkg/instrument"
	"github.com/shandysiswandi/godigest/internal/pkg/router"
	"github.com/shandysiswandi/godigest/internal/pkg/salt"
	"github.com/shandysiswandi/godigest/internal/pkg/uid"
	"github.com/shandysiswandi/godigest/internal/pkg/validator"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte("app:\n  name: godigest\n"))
	if err != nil {
		t.Fatalf("NewViperFromBytes() error = %v", err)
	}
	t.Cleanup(func() { cfg.Close() })

	v, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("NewV10Validator() error = %v", err)
	}

	uc := usecase.New(usecase.Dependency{
		Hashers: map[entity.Algorithm]hash.Hash{
			entity.AlgorithmMD5:    hash.NewMD5(),
			entity.AlgorithmSHA1:   hash.NewSHA1(),
			entity.AlgorithmSHA256: hash.NewSHA256(),
			entity.AlgorithmSHA512: hash.NewSHA512(),
		},
		Salt:       salt.NewGenerator(),
		Validator:  v,
		Instrument: instrument.NewNoop(),
	})

	r := router.NewRouter(router.Config{
		Config:     cfg,
		UUID:       uid.NewUUID(),
		Instrument: instrument.NewNoop(),
	})
	RegisterHTTPEndpoint(r, uc)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   map[string]string
}

func postJSON(t *testing.T, srv *httptest.Server, path, body string) (int, envelope) {
	t.Helper()

	resp, err := http.Post(srv.URL+path, "application/json", bytes.NewBufferString(body))
	if err != nil {
		t.Fatalf("http.Post() error = %v", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode response error = %v", err)
	}
	return resp.StatusCode, env
}

func TestHTTPEndpoint_Compute_Plain(t *testing.T) {
	srv := newTestServer(t)

	status, env := postJSON(t, srv, "/api/v1/digest/compute",
		`{"strings":["Hello"],"algorithm":"sha256"}`)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want %d", status, http.StatusOK)
	}

	var data PlainComputeResponse
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("unmarshal data error = %v", err)
	}

	if data.Algorithm != "SHA256" {
		t.Errorf("algorithm = %v, want SHA256", data.Algorithm)
	}
	want := "185F8DB32271FE25F561A6FC938B2E264306EC304EDA518007D1764826381969"
	if len(data.Digests) != 1 || data.Digests[0] != want {
		t.Errorf("digests = %v, want [%v]", data.Digests, want)
	}
}

func TestHTTPEndpoint_Compute_FixedSalt(t *testing.T) {
	srv := newTestServer(t)

	status, env := postJSON(t, srv, "/api/v1/digest/compute",
		`{"strings":["Hello"],"algorithm":"md5","salt":"X"}`)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want %d", status, http.StatusOK)
	}

	var data SaltedComputeResponse
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("unmarshal data error = %v", err)
	}

	if len(data.Results) != 1 {
		t.Fatalf("results length = %d, want 1", len(data.Results))
	}
	res := data.Results[0]
	if res.Seq != 1 || res.Salt != "X" || res.Algorithm != "MD5" {
		t.Errorf("result = %+v, want seq=1 salt=X algorithm=MD5", res)
	}
	if res.Digest != "0F121698AE6354A1A8C7B86A0F1BD852" {
		t.Errorf("digest = %v, want 0F121698AE6354A1A8C7B86A0F1BD852", res.Digest)
	}
}

func TestHTTPEndpoint_Compute_RandomSalt(t *testing.T) {
	srv := newTestServer(t)

	status, env := postJSON(t, srv, "/api/v1/digest/compute",
		`{"strings":["a","b"],"algorithm":"sha512","random_salt":true}`)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want %d", status, http.StatusOK)
	}

	var data SaltedComputeResponse
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("unmarshal data error = %v", err)
	}

	if len(data.Results) != 2 {
		t.Fatalf("results length = %d, want 2", len(data.Results))
	}
	for i, res := range data.Results {
		if res.Seq != i+1 {
			t.Errorf("results[%d].seq = %d, want %d", i, res.Seq, i+1)
		}
		if len(res.Salt) != salt.Length {
			t.Errorf("results[%d].salt length = %d, want %d", i, len(res.Salt), salt.Length)
		}
		if len(res.Digest) != 128 {
			t.Errorf("results[%d].digest length = %d, want 128", i, len(res.Digest))
		}
	}
	if data.Results[0].Salt == data.Results[1].Salt {
		t.Error("random salts are equal across results")
	}
}

func TestHTTPEndpoint_Compute_EmptyBatch(t *testing.T) {
	srv := newTestServer(t)

	status, env := postJSON(t, srv, "/api/v1/digest/compute",
		`{"strings":[],"algorithm":"sha1"}`)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want %d", status, http.StatusOK)
	}

	var data PlainComputeResponse
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("unmarshal data error = %v", err)
	}
	if data.Digests == nil || len(data.Digests) != 0 {
		t.Errorf("digests = %v, want empty array", data.Digests)
	}
}

func TestHTTPEndpoint_Compute_Errors(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			name:       "MalformedJSON",
			body:       `{"strings":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "UnknownField",
			body:       `{"strings":["x"],"algorithm":"md5","unknown":true}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "MissingAlgorithm",
			body:       `{"strings":["x"]}`,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "UnsupportedAlgorithm",
			body:       `{"strings":["x"],"algorithm":"crc32"}`,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "SaltConflict",
			body:       `{"strings":["x"],"algorithm":"md5","salt":"s","random_salt":true}`,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "MissingStrings",
			body:       `{"algorithm":"md5"}`,
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env := postJSON(t, srv, "/api/v1/digest/compute", tt.body)
			if status != tt.wantStatus {
				t.Errorf("status = %d, want %d", status, tt.wantStatus)
			}
			if env.Message == "" {
				t.Error("error message is empty")
			}
		})
	}
}

func TestHTTPEndpoint_Salt(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/digest/salt")
	if err != nil {
		t.Fatalf("http.Get() error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode response error = %v", err)
	}

	var data SaltResponse
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("unmarshal data error = %v", err)
	}
	if len(data.Salt) != salt.Length {
		t.Errorf("salt length = %d, want %d", len(data.Salt), salt.Length)
	}
}
