package pricing

import (
	"errors"
	"math"
	"strings"
	"unicode"

	"leadmarket/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidRequest means the request cannot be priced: no rooms without a
	// package, or a non-positive room dimension.
	ErrInvalidRequest = errors.New("invalid estimate request")
	// ErrUnknownPackage means the request names a package the table does not
	// define.
	ErrUnknownPackage = errors.New("unknown pricing package")
)

// Engine turns an EstimateRequest into a PriceRange against a fixed Table.
// CalculateEstimate is a pure function of its inputs: same table, same
// request, same range.
type Engine struct {
	table *Table
}

func NewEngine(table *Table) *Engine {
	return &Engine{table: table}
}

// CalculateEstimate prices a request in the base currency.
//
// Room mode accumulates the nearest band per room plus per-item extras, then
// applies the property-type and region multipliers and rounds both ends to
// the nearest ten units. Quick-quote mode replaces the accumulation with the
// package band; a non-final band still takes the multipliers.
func (e *Engine) CalculateEstimate(req entities.EstimateRequest) (entities.PriceRange, error) {
	if req.PackageID != "" {
		return e.calculatePackage(req)
	}

	if len(req.Rooms) == 0 {
		return entities.PriceRange{}, ErrInvalidRequest
	}

	var minSum, maxSum int64
	for _, room := range req.Rooms {
		if room.Length <= 0 || room.Width <= 0 {
			return entities.PriceRange{}, ErrInvalidRequest
		}
		band := e.nearestRoomBand(room.Area())
		minSum += band.Min
		maxSum += band.Max
	}

	minSum += extrasTotal(e.table.Extras, req.Extras, func(b Band) int64 { return b.Min })
	maxSum += extrasTotal(e.table.Extras, req.Extras, func(b Band) int64 { return b.Max })

	return e.applyMultipliers(minSum, maxSum, req), nil
}

func (e *Engine) calculatePackage(req entities.EstimateRequest) (entities.PriceRange, error) {
	pkg, ok := e.table.Packages[req.PackageID]
	if !ok {
		return entities.PriceRange{}, ErrUnknownPackage
	}
	if pkg.Final {
		return entities.PriceRange{
			Min: roundToTen(decimal.NewFromInt(pkg.Min)),
			Max: roundToTen(decimal.NewFromInt(pkg.Max)),
		}, nil
	}
	return e.applyMultipliers(pkg.Min, pkg.Max, req), nil
}

func (e *Engine) applyMultipliers(minSum, maxSum int64, req entities.EstimateRequest) entities.PriceRange {
	property := decimal.NewFromFloat(e.table.PropertyMultiplier(req.PropertyType))
	region := decimal.NewFromFloat(e.table.RegionMultiplierFor(NormalizePostcode(req.Postcode)))

	return entities.PriceRange{
		Min: roundToTen(decimal.NewFromInt(minSum).Mul(property).Mul(region)),
		Max: roundToTen(decimal.NewFromInt(maxSum).Mul(property).Mul(region)),
	}
}

// nearestRoomBand picks the band whose area is closest to the room's. Ties go
// to the smaller band; the table is kept in ascending area order and the
// strict comparison keeps the first entry seen.
func (e *Engine) nearestRoomBand(area float64) RoomBand {
	best := e.table.RoomBands[0]
	bestDiff := math.Abs(area - best.SquareMetres)
	for _, band := range e.table.RoomBands[1:] {
		if diff := math.Abs(area - band.SquareMetres); diff < bestDiff {
			best = band
			bestDiff = diff
		}
	}
	return best
}

func extrasTotal(bands ExtraBands, spec entities.ExtrasSpec, pick func(Band) int64) int64 {
	var total int64
	if spec.Doors > 0 {
		total += int64(spec.Doors) * pick(bands.Door)
	}
	if spec.Windows > 0 {
		total += int64(spec.Windows) * pick(bands.Window)
	}
	if spec.SkirtingBoards > 0 {
		total += int64(spec.SkirtingBoards) * pick(bands.SkirtingBoard)
	}
	return total
}

// NormalizePostcode uppercases and strips all whitespace so prefix matching
// sees a canonical form.
func NormalizePostcode(postcode string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToUpper(r)
	}, postcode)
}

// roundToTen rounds half-up to the nearest ten currency units.
func roundToTen(d decimal.Decimal) int64 {
	return d.Round(-1).IntPart()
}
