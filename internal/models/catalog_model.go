package models

// Program is opaque to this service beyond its open flag.
type Program struct {
	ID     string                 `json:"id"`
	IsOpen bool                   `json:"isOpen"`
	Data   map[string]interface{} `json:"data"`
}

// QRInfo is the payload a QR identifier maps to.
type QRInfo struct {
	ID   string                 `json:"id"`
	Data map[string]interface{} `json:"data"`
}

// GeoPoint mirrors a Firestore geopoint.
type GeoPoint struct {
	Latitude  float64 `json:"latitude" firestore:"latitude"`
	Longitude float64 `json:"longitude" firestore:"longitude"`
}

// Place represents a document in the place collection.
type Place struct {
	ID         string   `json:"id" firestore:"-"`
	Name       string   `json:"name" firestore:"name"`
	Congestion float64  `json:"congestion" firestore:"congestion"`
	Center     GeoPoint `json:"center" firestore:"center"`
	Latitude   float64  `json:"latitude" firestore:"latitude"`
	Longitude  float64  `json:"longitude" firestore:"longitude"`
}

// Mode is the single global deployment-mode document.
type Mode struct {
	Dev bool `json:"dev" firestore:"dev"`
}

// ModeInfo combines the global and the per-user developer flags.
type ModeInfo struct {
	WebMode  bool `json:"webMode"`
	UserMode bool `json:"userMode"`
}
