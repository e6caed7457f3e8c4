// response.go - Response envelope shared by every endpoint

package handlers // Declares the package name

import ( // Import required packages
	"encoding/json" // Flexible number decoding
	"log"           // Logging internal failures
	"strconv"       // Numeric strings
	"strings"       // Trimming

	"caloriq-backend/apperr" // Error taxonomy and status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

// Envelope is present in every response. Endpoint payloads embed it so their
// fields sit next to statusCode and statusDesc in the same JSON object.
type Envelope struct {
	StatusCode apperr.Code `json:"statusCode"`      // Domain status code (SC200, SC400, ...)
	StatusDesc string      `json:"statusDesc"`      // Human-readable description
	Error      string      `json:"error,omitempty"` // Internal failure detail, SC500 only
}

func success(desc string) Envelope {
	return Envelope{StatusCode: apperr.SC200, StatusDesc: desc}
}

// reply writes body with the HTTP status mirroring code.
func reply(c *gin.Context, code apperr.Code, body any) {
	c.JSON(code.HTTPStatus(), body)
}

// fail converts err into an envelope. Internal failures are logged and their
// detail is attached; client errors only carry their description.
func fail(c *gin.Context, err error, fallback string) {
	code := apperr.CodeOf(err)
	env := Envelope{StatusCode: code, StatusDesc: apperr.DescOf(err, fallback)}
	if code == apperr.SC500 {
		log.Printf("%s %s: %v", c.Request.Method, c.FullPath(), err) // Log internal failure
		env.Error = err.Error()
	}
	reply(c, code, env)
}

func badRequest(c *gin.Context, desc string) {
	reply(c, apperr.SC400, Envelope{StatusCode: apperr.SC400, StatusDesc: desc})
}

// Number decodes a JSON number or a numeric string, mirroring clients that
// send form values as text. Anything else is recorded as Invalid rather than
// failing the whole body, so each endpoint can answer with its own message.
type Number struct {
	Value   float64
	Set     bool // Field present and not null
	Invalid bool // Field present but not numeric
}

func (n *Number) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	n.Set = true
	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		n.Value = f
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			n.Value = f
			return nil
		}
	}
	n.Invalid = true
	return nil
}

// Float returns the value and whether it is usable.
func (n Number) Float() (float64, bool) {
	return n.Value, n.Set && !n.Invalid
}
