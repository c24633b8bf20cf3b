package dataset

// fileDTO is the on-disk layout of one dataset file. Either section may be
// absent.
type fileDTO struct {
	Characters []CharacterDTO `yaml:"characters" validate:"dive"`
	Houses     []HouseDTO     `yaml:"houses" validate:"dive"`
}

// CharacterDTO is the wire form of a character. Pointer fields distinguish
// "absent" from the zero value.
type CharacterDTO struct {
	ID         *int64   `yaml:"id" json:"id" validate:"required,gte=0"`
	Name       string   `yaml:"name" json:"name" validate:"required"`
	Titles     []string `yaml:"titles" json:"titles"`
	Portrayals []string `yaml:"portrayals" json:"portrayals"`
}

// HouseDTO is the wire form of a house. An absent current_lord or overlord
// decodes to domain.NoRelation.
type HouseDTO struct {
	ID          *int64 `yaml:"id" json:"id" validate:"required,gte=0"`
	Name        string `yaml:"name" json:"name" validate:"required"`
	Region      string `yaml:"region" json:"region"`
	Words       string `yaml:"words" json:"words"`
	CurrentLord *int64 `yaml:"current_lord" json:"current_lord" validate:"omitempty,gte=-1"`
	Overlord    *int64 `yaml:"overlord" json:"overlord" validate:"omitempty,gte=-1"`
}
