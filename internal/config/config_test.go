package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"HTTP_ADDR", "DATA_DIR", "STORE_DRIVER", "NATS_URL", "ADMIN_API_KEY_HASH", "PUBLIC_DIR", "CORS_ORIGINS"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	assert.Equal(t, ":5000", cfg.HTTPAddr)
	assert.Equal(t, "./data", cfg.DataDir)
	assert.Equal(t, DriverFile, cfg.StoreDriver)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Empty(t, cfg.NatsURL)
	require.NoError(t, cfg.Validate())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":8080")
	t.Setenv("GRPC_ADDR", "")
	t.Setenv("STORE_DRIVER", DriverPostgres)
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test ,")

	cfg := Load()
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Empty(t, cfg.GRPCAddr, "explicit empty GRPC_ADDR disables the listener")
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	require.NoError(t, cfg.Validate())
}

func TestValidate_UnknownDriver(t *testing.T) {
	cfg := Config{HTTPAddr: ":5000", StoreDriver: "mysql"}
	assert.Error(t, cfg.Validate())
}

func TestClient(t *testing.T) {
	t.Setenv("STOREFRONT_API_URL", "http://shop.test/api/")
	t.Setenv("STOREFRONT_CHECKOUT", CheckoutWhatsApp)
	t.Setenv("STOREFRONT_WHATSAPP_NUMBER", "")

	cfg := LoadClient()
	assert.Equal(t, "http://shop.test/api", cfg.APIURL)
	assert.Error(t, cfg.Validate(), "whatsapp mode needs a number")

	cfg.WhatsAppNumber = "5491100000000"
	assert.NoError(t, cfg.Validate())

	cfg.CheckoutMode = "fax"
	assert.Error(t, cfg.Validate())
}
