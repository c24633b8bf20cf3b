package app

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/realm-chronicle/internal/adapters/memstore"
	"github.com/jsamuelsen11/realm-chronicle/internal/domain"
	"github.com/jsamuelsen11/realm-chronicle/internal/domain/character"
	"github.com/jsamuelsen11/realm-chronicle/internal/domain/house"
	"github.com/jsamuelsen11/realm-chronicle/internal/ports"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// realmDataset is a small, hand-checked slice of Westeros:
//
//	Martell(10) <- Yronwood(11) <- Uller(13) <- Qorgyle(17)
//	Martell(10) <- Dayne(12)
//	Lannister(14) <- Clegane(15) <- Payne(16)
//
// Uller's lord (99) does not exist.
func realmDataset() *ports.Dataset {
	return &ports.Dataset{
		Characters: []character.Character{
			character.New(1, "Doran Martell", []string{"Prince of Dorne", "Lord of Sunspear"}, []string{"Alexander Siddig"}),
			character.New(2, "Anders Yronwood", []string{"Lord of Yronwood", "Warden of the Stone Way", "Bloodroyal"}, nil),
			character.New(3, "Jon Snow", []string{""}, []string{"Kit Harington"}),
			character.New(4, "Arya", []string{}, []string{"Maisie Williams"}),
			character.New(5, "Tyrion Lannister", []string{"Hand of the King", "Master of Coin", "Lord of Casterly Rock"}, []string{"Peter Dinklage"}),
			character.New(6, "Edric Dayne", []string{"Lord of Starfall"}, nil),
			character.New(7, "Bran", []string{"Prince of Winterfell"}, []string{"Isaac Hempstead Wright"}),
		},
		Houses: []house.House{
			house.New(10, "Martell", "Dorne", "Unbowed, Unbent, Unbroken", 1, domain.NoRelation),
			house.New(11, "Yronwood", "Dorne", "We Guard the Way", 2, 10),
			house.New(12, "Dayne", "Dorne", "", 6, 10),
			house.New(13, "Uller", "Dorne", "", 99, 11),
			house.New(14, "Lannister", "The Westerlands", "Hear Me Roar!", 5, domain.NoRelation),
			house.New(15, "Clegane", "The Westerlands", "", domain.NoRelation, 14),
			house.New(16, "Payne", "The Westerlands", "", domain.NoRelation, 15),
			house.New(17, "Qorgyle", "Dorne, Sandstone", "", 1, 13),
		},
	}
}

func newRealmStore(t *testing.T) *memstore.Store {
	t.Helper()
	store, err := memstore.NewFromDataset(realmDataset())
	require.NoError(t, err)
	return store
}

func newQueryService(t *testing.T) *QueryService {
	t.Helper()
	return NewQueryService(newRealmStore(t).View(), discardLogger())
}

func mustHouse(t *testing.T, read ports.ReadAccess, id int64) house.House {
	t.Helper()
	h, ok := read.HouseByID(id)
	require.Truef(t, ok, "house %d not found", id)
	return h
}

func characterIDs(cs []character.Character) []int64 {
	ids := make([]int64, len(cs))
	for i, c := range cs {
		ids[i] = c.ID()
	}
	return ids
}

func houseIDs(hs []house.House) []int64 {
	ids := make([]int64, len(hs))
	for i, h := range hs {
		ids[i] = h.ID()
	}
	return ids
}

func gryffindor() house.House {
	return house.New(1000, "Gryffindor", "Hogwarts", "Wingardium leviosa", 7000, domain.NoRelation)
}

func dumbledore() character.Character {
	return character.New(7000, "Albus Percival Wulfric Dumbledore",
		[]string{"Professor", "Headmaster"},
		[]string{"Richard Harris", "Other guy"})
}
