package service_test

import (
	"context"
	"testing"

	"github.com/ndewijer/Household-Wealth-Dashboard/internal/testutil"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/version"
)

func TestSystemService_CheckHealth(t *testing.T) {
	t.Run("healthy with an open database", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSystemService(t, db)

		if err := svc.CheckHealth(context.Background()); err != nil {
			t.Errorf("CheckHealth() returned unexpected error: %v", err)
		}
	})

	t.Run("unhealthy once the database is closed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSystemService(t, db)
		db.Close()

		if err := svc.CheckHealth(context.Background()); err == nil {
			t.Error("Expected an error for a closed database")
		}
	})
}

// TestSystemService_GetVersionInfo tests version reporting.
//
// WHY: Operators compare the reported schema version with the shipped migrations
// to confirm an upgrade ran.
func TestSystemService_GetVersionInfo(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestSystemService(t, db)

	info, err := svc.GetVersionInfo(context.Background())
	if err != nil {
		t.Fatalf("GetVersionInfo() returned unexpected error: %v", err)
	}

	if info.AppVersion != version.Version {
		t.Errorf("Expected app version %q, got %q", version.Version, info.AppVersion)
	}
	if info.DbVersion != "3" {
		t.Errorf("Expected schema version 3, got %q", info.DbVersion)
	}
	if !info.Features["auth"] {
		t.Errorf("Expected auth feature flag, got %v", info.Features)
	}
}
