package proctoring

// BoundingBox is a face box in normalized [0,1] image coordinates.
type BoundingBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (b BoundingBox) Center() (float64, float64) {
	return b.X + b.Width/2, b.Y + b.Height/2
}

// FrameDetectionResult is what the face recognition service returns for one image.
type FrameDetectionResult struct {
	FaceDetected  bool          `json:"face_detected"`
	FaceCount     int           `json:"face_count"`
	Embeddings    []float64     `json:"face_embeddings"`
	BoundingBoxes []BoundingBox `json:"bounding_boxes"`
}

// FrameAnalysis is the outcome of analyzing one frame of a session.
type FrameAnalysis struct {
	SessionID           string      `json:"session_id"`
	Violations          []Violation `json:"violations"`
	FaceDetected        bool        `json:"face_detected"`
	FaceCount           int         `json:"face_count"`
	Confidence          float64     `json:"confidence"`
	WarningCount        int         `json:"warning_count"`
	WarningLimitReached bool        `json:"warning_limit_reached"`
}
