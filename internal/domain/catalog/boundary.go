package catalog

import (
	"strings"

	domainerrors "foodaid/internal/domain/errors"

	"github.com/paulmach/orb/geojson"
)

// ValidateBoundary accepts an empty boundary or any GeoJSON Geometry,
// Feature or FeatureCollection document.
func ValidateBoundary(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	data := []byte(raw)
	_, err := geojson.UnmarshalGeometry(data)
	if err == nil {
		return nil
	}
	if _, ferr := geojson.UnmarshalFeature(data); ferr == nil {
		return nil
	}
	if _, cerr := geojson.UnmarshalFeatureCollection(data); cerr == nil {
		return nil
	}

	return domainerrors.ErrInvalidBoundary.WithDetails(err.Error())
}
