// Package classify derives the presentation metadata attached to each
// constellation record: hemisphere visibility, best viewing seasons,
// and the curated difficulty rating.
package classify

// Declination band around the equator inside which a constellation is
// comfortably visible from both hemispheres.
const sharedDecBand = 20.0

// Circumpolar figures are visible year round, so seasons collapse to
// a single "all" entry.
const circumpolarDec = 60.0

// Hemisphere buckets a constellation by the declination of its center:
// "north", "south", or "both" within the shared band.
func Hemisphere(dec float64) string {
	switch {
	case dec > sharedDecBand:
		return "north"
	case dec < -sharedDecBand:
		return "south"
	default:
		return "both"
	}
}

// Seasons maps the center position to northern-hemisphere evening
// viewing seasons by right ascension. RA is taken in hours and bucketed
// into 6h windows; circumpolar figures get ["all"].
func Seasons(ra, dec float64) []string {
	if dec > circumpolarDec || dec < -circumpolarDec {
		return []string{"all"}
	}
	switch {
	case ra >= 21 || ra < 3:
		return []string{"autumn"}
	case ra < 9:
		return []string{"winter"}
	case ra < 15:
		return []string{"spring"}
	default:
		return []string{"summer"}
	}
}

// Difficulty is how recognizable a constellation is to a casual
// observer, not how hard it was to chart.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// DifficultyFor returns the curated rating for an IAU code, defaulting
// to Medium for codes missing from the table.
func DifficultyFor(code string) Difficulty {
	if d, ok := difficultyRatings[code]; ok {
		return d
	}
	return Medium
}

// difficultyRatings is a curated table. Easy constellations have
// bright, distinctive shapes most people can find unaided, hard ones
// are faint or shapeless.
var difficultyRatings = map[string]Difficulty{
	// Bright and iconic.
	"Ori": Easy, "UMa": Easy, "UMi": Easy, "Cas": Easy, "Leo": Easy,
	"Sco": Easy, "Sgr": Easy, "Cyg": Easy, "Lyr": Easy, "Aur": Easy,
	"Gem": Easy, "Tau": Easy, "Per": Easy, "Cru": Easy, "Cen": Easy,
	"CMa": Easy, "And": Easy, "Peg": Easy, "Vir": Easy, "Aql": Easy,

	// Recognizable with some effort.
	"Boo": Medium, "Her": Medium, "Oph": Medium, "Ser": Medium, "Hya": Medium,
	"Aqr": Medium, "Psc": Medium, "Ari": Medium, "Cap": Medium, "Lib": Medium,
	"Cnc": Medium, "Dra": Medium, "Cep": Medium, "Lup": Medium, "Vel": Medium,
	"Car": Medium, "Pup": Medium, "CMi": Medium, "Del": Medium, "Eri": Medium,
	"Cet": Medium, "Phe": Medium, "Gru": Medium, "Pav": Medium, "Tuc": Medium,
	"Hyi": Medium, "Dor": Medium, "Col": Medium, "Lep": Medium, "Mon": Medium,
	"CrB": Medium, "CVn": Medium, "LMi": Medium, "Lyn": Medium, "Tri": Medium,

	// Faint or shapeless.
	"Ant": Hard, "Aps": Hard, "Cae": Hard, "Cam": Hard, "Cha": Hard,
	"Cir": Hard, "Com": Hard, "CrA": Hard, "Crt": Hard, "Crv": Hard,
	"Equ": Hard, "For": Hard, "Hor": Hard, "Ind": Hard, "Lac": Hard,
	"Men": Hard, "Mic": Hard, "Mus": Hard, "Nor": Hard, "Oct": Hard,
	"Pic": Hard, "PsA": Hard, "Pyx": Hard, "Ret": Hard, "Scl": Hard,
	"Sct": Hard, "Sex": Hard, "Sge": Hard, "Tel": Hard, "TrA": Hard,
	"Vol": Hard, "Vul": Hard,
}
