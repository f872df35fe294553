package app_test

import (
	"testing"

	"github.com/category-lecture-notes/typst-tikz/internal/app"
	"github.com/category-lecture-notes/typst-tikz/internal/core/ports/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewComponents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger := mocks.NewMockLogger(ctrl)
	components := app.NewComponents(&app.App{}, logger)

	require.NotNil(t, components)
	require.NotNil(t, components.App)
	require.NotNil(t, components.Logger)
}
