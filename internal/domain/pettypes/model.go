package pettypes

// Types es la lista fija de la que se sortea PetType.Type.
var Types = [...]string{
	"dog",
	"cat",
	"bird",
	"fish",
	"rabbit",
	"hamster",
	"turtle",
	"snake",
	"lizard",
	"ferret",
}

const (
	SampleSize = 5
	MaxAmount  = 100
)

// PetType es efímero: se recalcula en cada request y no se guarda.
type PetType struct {
	Type   string `json:"Type"`
	Amount int    `json:"Amount"`
	Qty    int    `json:"Qty"`
}
