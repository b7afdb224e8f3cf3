package ports

import (
	"context"
	"testing"

	"github.com/dkealton/rigforge/pkg/blueprint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunStoreContract verifies that a Store implementation adheres to the
// interface contract. Adapters call it from their own tests.
func RunStoreContract(t *testing.T, store Store) {
	ctx := context.Background()

	build := func(name string) *blueprint.Blueprint {
		b := blueprint.New()
		b.Name = name
		b.RootGroup().SetDisplayName("Root")
		arm := blueprint.NewGroup()
		arm.SetDisplayName("Arm")
		require.NoError(t, b.RootGroup().AddChild(arm))
		return b
	}

	t.Run("Save and Load", func(t *testing.T) {
		b := build("contract_rig")
		require.NoError(t, store.Save(ctx, "contract_rig", b))

		loaded, err := store.Load(ctx, "contract_rig")
		require.NoError(t, err)
		assert.Equal(t, b.Serialize(), loaded.Serialize())
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "contract_missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Save Overwrites", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "contract_rig", build("contract_rig")))

		updated := build("contract_rig")
		updated.RootGroup().SetDisplayName("Replaced")
		require.NoError(t, store.Save(ctx, "contract_rig", updated))

		loaded, err := store.Load(ctx, "contract_rig")
		require.NoError(t, err)
		assert.Equal(t, "Replaced", loaded.RootGroup().DisplayName())
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "contract_rig", build("contract_rig")))
		require.NoError(t, store.Delete(ctx, "contract_rig"))

		_, err := store.Load(ctx, "contract_rig")
		assert.ErrorIs(t, err, ErrNotFound)

		// Deleting again stays quiet.
		assert.NoError(t, store.Delete(ctx, "contract_rig"))
	})

	t.Run("List", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "contract_a", build("contract_a")))
		require.NoError(t, store.Save(ctx, "contract_b", build("contract_b")))
		defer func() {
			_ = store.Delete(ctx, "contract_a")
			_ = store.Delete(ctx, "contract_b")
		}()

		names, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, names, "contract_a")
		assert.Contains(t, names, "contract_b")
	})
}
