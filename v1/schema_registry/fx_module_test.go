package schema_registry

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/mock/gomock"

	"github.com/Aleph-Alpha/tickcodec/v1/logger"
)

func TestFXModule(t *testing.T) {
	srv := httptest.NewServer(newFakeRegistry())
	defer srv.Close()

	ctrl := gomock.NewController(t)
	log := logger.NewMockLogger(ctrl)
	log.EXPECT().Info("Schema Registry client initialized", nil, nil)
	log.EXPECT().Info("Schema Registry client shutdown", nil, nil)
	log.EXPECT().InfoWithContext(gomock.Any(), "Schema published", nil, gomock.Any())

	var publisher *Publisher
	var registry Registry

	app := fxtest.New(t,
		FXModule,
		fx.Supply(Config{URL: srv.URL}),
		fx.Provide(func() logger.Logger { return log }),
		fx.Populate(&publisher, &registry),
	)
	app.RequireStart()

	require.NotNil(t, publisher)
	require.IsType(t, &Client{}, registry)

	ids, err := publisher.Publish(t.Context(), map[string]interface{}{"artifact-value": &artifact{}})
	require.NoError(t, err)
	assert.Equal(t, 1, ids["artifact-value"])

	app.RequireStop()
}

func TestFXModule_MissingURL(t *testing.T) {
	app := fx.New(
		FXModule,
		fx.Supply(Config{}),
		fx.NopLogger,
	)
	assert.ErrorContains(t, app.Err(), "schema registry URL is required")
}
