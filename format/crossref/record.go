package crossref

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/lehigh-university-libraries/orcid2vivo/helpers"
	"github.com/lehigh-university-libraries/orcid2vivo/hub"
)

// Record is one CrossRef work. The zero value and a nil *Record have no
// fields.
type Record struct {
	msg *structpb.Struct
}

// NewRecord wraps a decoded message object.
func NewRecord(msg *structpb.Struct) *Record {
	return &Record{msg: msg}
}

// Parse decodes a /works/<doi> response body.
func Parse(r io.Reader) (*Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading crossref response: %w", err)
	}
	return parseBytes(data)
}

func parseBytes(data []byte) (*Record, error) {
	envelope := &structpb.Struct{}
	if err := protojson.Unmarshal(data, envelope); err != nil {
		return nil, fmt.Errorf("decoding crossref response: %w", err)
	}

	msg := envelope.GetFields()["message"].GetStructValue()
	if msg == nil {
		return nil, fmt.Errorf("crossref response has no message object")
	}
	return NewRecord(msg), nil
}

// Message returns the underlying message object.
func (r *Record) Message() *structpb.Struct {
	if r == nil {
		return nil
	}
	return r.msg
}

func (r *Record) field(name string) *structpb.Value {
	if r == nil {
		return nil
	}
	return r.msg.GetFields()[name]
}

// DOI returns the record's DOI.
func (r *Record) DOI() string {
	return strings.TrimSpace(r.field("DOI").GetStringValue())
}

// Title returns the first title, or "" when the record has none.
func (r *Record) Title() string {
	titles := stringList(r.field("title"))
	if len(titles) == 0 {
		return ""
	}
	return titles[0]
}

// Subjects returns the subject area names.
func (r *Record) Subjects() []string {
	return stringList(r.field("subject"))
}

// Issued returns the issued date from date-parts. Records without a year
// yield the zero Date.
func (r *Record) Issued() hub.Date {
	issued := r.field("issued").GetStructValue()
	parts := issued.GetFields()["date-parts"].GetListValue().GetValues()
	if len(parts) == 0 {
		return hub.Date{}
	}

	var ymd [3]int
	for i, v := range parts[0].GetListValue().GetValues() {
		if i >= len(ymd) {
			break
		}
		ymd[i] = intValue(v)
	}
	return hub.NewDate(ymd[0], ymd[1], ymd[2])
}

// Authors returns the author names in record order. Authors with neither a
// given nor a family name are skipped.
func (r *Record) Authors() []hub.Name {
	var names []hub.Name
	for _, v := range r.field("author").GetListValue().GetValues() {
		fields := v.GetStructValue().GetFields()
		name := hub.Name{
			Given:  helpers.NormalizeWhitespace(fields["given"].GetStringValue()),
			Family: helpers.NormalizeWhitespace(fields["family"].GetStringValue()),
		}
		if name.IsZero() {
			continue
		}
		names = append(names, name)
	}
	return names
}

func stringList(v *structpb.Value) []string {
	var out []string
	for _, item := range v.GetListValue().GetValues() {
		if s := strings.TrimSpace(item.GetStringValue()); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// date-parts are numbers, but some deposits carry them as strings
func intValue(v *structpb.Value) int {
	switch k := v.GetKind().(type) {
	case *structpb.Value_NumberValue:
		if math.IsNaN(k.NumberValue) || k.NumberValue < 0 || k.NumberValue > math.MaxInt32 {
			return 0
		}
		return int(k.NumberValue)
	case *structpb.Value_StringValue:
		n, err := strconv.Atoi(strings.TrimSpace(k.StringValue))
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}
