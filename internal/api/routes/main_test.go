//go:build integration
// +build integration

package routes

import (
	"testing"

	"github.com/Dolapo001/SPAS/internal/testutils"
)

func TestMain(m *testing.M) {
	testutils.RunMain(m)
}
