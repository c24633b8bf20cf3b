package app

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/realm-chronicle/internal/adapters/memstore"
	"github.com/jsamuelsen11/realm-chronicle/internal/domain"
	"github.com/jsamuelsen11/realm-chronicle/internal/domain/character"
	"github.com/jsamuelsen11/realm-chronicle/internal/domain/house"
	"github.com/jsamuelsen11/realm-chronicle/mocks"
)

func newWriteService(t *testing.T) (*WriteService, *memstore.Store) {
	t.Helper()
	store := newRealmStore(t)
	return NewWriteService(store, store.View(), discardLogger()), store
}

func TestNewWriteService_NilLogger(t *testing.T) {
	t.Parallel()

	store := memstore.New()
	svc := NewWriteService(store, store.View(), nil)
	if svc.logger == nil {
		t.Fatal("NewWriteService(nil logger) should create a no-op logger, got nil")
	}
}

// --- AddHouse / AddCharacter ---

func TestWriteService_AddHouse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		house   house.House
		wantErr error
	}{
		{name: "new house", house: gryffindor()},
		{name: "duplicate id", house: house.New(10, "Martell II", "Dorne", "", 1, domain.NoRelation), wantErr: domain.ErrConflict},
		{name: "blank name", house: house.New(1001, " ", "Hogwarts", "", 1, domain.NoRelation), wantErr: domain.ErrValidation},
		{name: "negative id", house: house.New(-5, "Slytherin", "Hogwarts", "", 1, domain.NoRelation), wantErr: domain.ErrValidation},
		{name: "sworn to itself", house: house.New(1002, "Ravenclaw", "Hogwarts", "", 1, 1002), wantErr: domain.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, store := newWriteService(t)

			err := svc.AddHouse(context.Background(), tt.house)

			_, houses := store.Counts()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, 8, houses, "a rejected house must not be stored")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 9, houses)

			got, ok := store.View().HouseByID(tt.house.ID())
			require.True(t, ok)
			assert.Equal(t, tt.house, got)
		})
	}
}

func TestWriteService_AddCharacter(t *testing.T) {
	t.Parallel()

	t.Run("appends to the end", func(t *testing.T) {
		t.Parallel()
		svc, store := newWriteService(t)

		require.NoError(t, svc.AddCharacter(context.Background(), dumbledore()))

		all := slices.Collect(store.View().Characters())
		require.Len(t, all, 8)
		assert.Equal(t, dumbledore(), all[len(all)-1])
	})

	t.Run("duplicate id conflicts", func(t *testing.T) {
		t.Parallel()
		svc, _ := newWriteService(t)

		err := svc.AddCharacter(context.Background(), character.New(1, "Doran again", nil, nil))
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("invalid character is rejected before writing", func(t *testing.T) {
		t.Parallel()
		write := mocks.NewMockWriteAccess(t)
		svc := NewWriteService(write, memstore.New().View(), discardLogger())

		err := svc.AddCharacter(context.Background(), character.New(8, "", nil, nil))

		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Fields, "name")
		write.AssertNotCalled(t, "AddCharacter", mock.Anything)
	})
}

// --- ChangeHouseRuler ---

func TestWriteService_ChangeHouseRuler(t *testing.T) {
	t.Parallel()

	t.Run("replaces lord and keeps position", func(t *testing.T) {
		t.Parallel()
		svc, store := newWriteService(t)
		view := store.View()
		tyrion, _ := view.CharacterByID(5)

		updated, err := svc.ChangeHouseRuler(context.Background(), mustHouse(t, view, 11), tyrion)
		require.NoError(t, err)
		assert.Equal(t, int64(5), updated.CurrentLord())

		stored := mustHouse(t, view, 11)
		assert.Equal(t, updated, stored)
		assert.Equal(t, []int64{10, 11, 12, 13, 14, 15, 16, 17}, houseIDs(slices.Collect(view.Houses())))
	})

	t.Run("ruler need not be stored", func(t *testing.T) {
		t.Parallel()
		svc, store := newWriteService(t)

		updated, err := svc.ChangeHouseRuler(context.Background(), mustHouse(t, store.View(), 14), dumbledore())
		require.NoError(t, err)
		assert.Equal(t, int64(7000), updated.CurrentLord())
	})

	t.Run("missing house leaves collection untouched", func(t *testing.T) {
		t.Parallel()
		svc, store := newWriteService(t)
		before := slices.Collect(store.View().Houses())

		_, err := svc.ChangeHouseRuler(context.Background(), gryffindor(), dumbledore())

		require.ErrorIs(t, err, domain.ErrNotFound)
		var nf *domain.HouseNotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, int64(1000), nf.HouseID)
		assert.Equal(t, before, slices.Collect(store.View().Houses()))
	})

	t.Run("stale house value is not found and store untouched", func(t *testing.T) {
		t.Parallel()
		svc, store := newWriteService(t)
		before := slices.Collect(store.View().Houses())
		stale := house.New(11, "", "The North", "", 2, domain.NoRelation)

		_, err := svc.ChangeHouseRuler(context.Background(), stale, dumbledore())

		var nf *domain.HouseNotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, int64(11), nf.HouseID)
		assert.Equal(t, before, slices.Collect(store.View().Houses()))
	})

	t.Run("write failure is returned unchanged", func(t *testing.T) {
		t.Parallel()
		writeErr := errors.New("store sealed")
		write := mocks.NewMockWriteAccess(t)
		write.EXPECT().ReplaceHouse(mock.AnythingOfType("house.House"), mock.AnythingOfType("house.House")).Return(writeErr)
		svc := NewWriteService(write, memstore.New().View(), discardLogger())

		_, err := svc.ChangeHouseRuler(context.Background(), gryffindor(), dumbledore())
		assert.ErrorIs(t, err, writeErr)
	})
}

// --- AddHouseAndListOverlorded ---

func TestWriteService_AddHouseAndListOverlorded(t *testing.T) {
	t.Parallel()

	t.Run("traverses from the new house", func(t *testing.T) {
		t.Parallel()
		svc, _ := newWriteService(t)
		// Sworn to Yronwood(11), whose overlord is Martell(10).
		blackmont := house.New(18, "Blackmont", "Dorne", "", domain.NoRelation, 11)

		got, err := svc.AddHouseAndListOverlorded(context.Background(), blackmont)
		require.NoError(t, err)
		assert.Equal(t, []int64{11, 12}, houseIDs(got))
	})

	t.Run("new house is visible to the traversal", func(t *testing.T) {
		t.Parallel()
		svc, _ := newWriteService(t)
		// Sworn to Clegane(15) -> Lannister(14); Lannister's only vassal is Clegane.
		got, err := svc.AddHouseAndListOverlorded(context.Background(),
			house.New(19, "Lorch", "The Westerlands", "", domain.NoRelation, 15))
		require.NoError(t, err)
		assert.Equal(t, []int64{15}, houseIDs(got))
	})

	t.Run("no overlord yields empty result", func(t *testing.T) {
		t.Parallel()
		svc, _ := newWriteService(t)

		got, err := svc.AddHouseAndListOverlorded(context.Background(), gryffindor())
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("conflict is wrapped", func(t *testing.T) {
		t.Parallel()
		svc, _ := newWriteService(t)

		_, err := svc.AddHouseAndListOverlorded(context.Background(),
			house.New(10, "Martell", "Dorne", "", 1, domain.NoRelation))
		assert.ErrorIs(t, err, domain.ErrConflict)
		assert.ErrorContains(t, err, "adding house")
	})
}

// --- AddHouseWithRuler ---

func TestWriteService_AddHouseWithRuler(t *testing.T) {
	t.Parallel()

	t.Run("gryffindor crowned with dumbledore", func(t *testing.T) {
		t.Parallel()
		store := memstore.New()
		svc := NewWriteService(store, store.View(), discardLogger())

		got, err := svc.AddHouseWithRuler(context.Background(), gryffindor(), dumbledore())
		require.NoError(t, err)

		assert.Equal(t, int64(7000), got.ID())
		assert.Equal(t, "Albus Percival Wulfric Dumbledore", got.Name())
		assert.Equal(t, []string{"Professor", "Headmaster"}, got.Titles())
		assert.Equal(t, []string{"Richard Harris", "Other guy"}, got.Portrayals())

		stored := mustHouse(t, store.View(), 1000)
		assert.Equal(t, int64(7000), stored.CurrentLord())
	})

	t.Run("ruler replaces the lord named on the house", func(t *testing.T) {
		t.Parallel()
		svc, _ := newWriteService(t)
		h := house.New(1000, "Gryffindor", "Hogwarts", "Wingardium leviosa", 1, domain.NoRelation)

		got, err := svc.AddHouseWithRuler(context.Background(), h, dumbledore())
		require.NoError(t, err)
		assert.Equal(t, int64(7000), got.ID())
	})

	t.Run("existing ruler id conflicts after house is added", func(t *testing.T) {
		t.Parallel()
		svc, store := newWriteService(t)

		_, err := svc.AddHouseWithRuler(context.Background(), gryffindor(),
			character.New(1, "Impostor", nil, nil))
		require.ErrorIs(t, err, domain.ErrConflict)
		assert.ErrorContains(t, err, "adding ruler")

		_, ok := store.View().HouseByID(1000)
		assert.True(t, ok, "earlier steps stay applied")
	})

	t.Run("invalid house stops before any write", func(t *testing.T) {
		t.Parallel()
		svc, store := newWriteService(t)

		_, err := svc.AddHouseWithRuler(context.Background(),
			house.New(1000, "", "Hogwarts", "", 1, domain.NoRelation), dumbledore())
		require.ErrorIs(t, err, domain.ErrValidation)

		_, ok := store.View().CharacterByID(7000)
		assert.False(t, ok)
	})
}
