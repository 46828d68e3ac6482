package db

import (
	"fmt"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
	"google.golang.org/genproto/googleapis/type/latlng"

	"github.com/example/eventapp/internal/models"
)

var geoPointType = reflect.TypeOf(models.GeoPoint{})

// geoPointHook turns Firestore geopoints into models.GeoPoint.
func geoPointHook(_ reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to != geoPointType {
		return data, nil
	}
	if ll, ok := data.(*latlng.LatLng); ok {
		if ll == nil {
			return models.GeoPoint{}, nil
		}
		return models.GeoPoint{Latitude: ll.GetLatitude(), Longitude: ll.GetLongitude()}, nil
	}
	return data, nil
}

// DataTo decodes a raw document map into the struct pointed to by v. Field
// names come from `firestore` tags; unknown fields are ignored.
func DataTo(data map[string]interface{}, v interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:    "firestore",
		Result:     v,
		DecodeHook: geoPointHook,
	})
	if err != nil {
		return fmt.Errorf("failed to build decoder: %w", err)
	}
	if err := dec.Decode(data); err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}
	return nil
}
