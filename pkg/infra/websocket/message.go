package websocket

import (
	"encoding/json"

	domainProctoring "github.com/NeuralTrust/TrustProctor/pkg/domain/proctoring"
)

const (
	MessageTypeAnalysis = "analysis"
	MessageTypeError    = "error"
	MessageTypeClosed   = "closed"
)

// Message is sent to the client for every frame it streams.
type Message struct {
	Type     string                          `json:"type"`
	Sequence uint64                          `json:"sequence"`
	Analysis *domainProctoring.FrameAnalysis `json:"analysis,omitempty"`
	Error    string                          `json:"error,omitempty"`
}

// FrameEnvelope is the text form of a frame: a base64 image or data URL.
type FrameEnvelope struct {
	Image string `json:"image"`
}

func AnalysisMessage(seq uint64, analysis *domainProctoring.FrameAnalysis) Message {
	return Message{Type: MessageTypeAnalysis, Sequence: seq, Analysis: analysis}
}

func ErrorMessage(seq uint64, msg string) Message {
	return Message{Type: MessageTypeError, Sequence: seq, Error: msg}
}

func (m Message) Bytes() []byte {
	b, err := json.Marshal(m)
	if err != nil {
		return []byte(`{"type":"error","error":"failed to encode message"}`)
	}
	return b
}
