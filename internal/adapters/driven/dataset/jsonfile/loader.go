package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/google/uuid"

	"github.com/custodia-labs/reliefdir/internal/core/domain"
	"github.com/custodia-labs/reliefdir/internal/core/ports/driven"
	"github.com/custodia-labs/reliefdir/internal/logger"
)

// Ensure Loader implements the interface.
var _ driven.DatasetLoader = (*Loader)(nil)

// idNamespace seeds the keys generated for records without an id.
var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("reliefdir:organization"))

// Loader reads organizations from a JSON file.
type Loader struct {
	path string
}

// NewLoader creates a loader for the JSON file at path.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Path returns the file the loader reads.
func (l *Loader) Path() string {
	return l.path
}

// Format reports domain.DatasetFormatJSON.
func (l *Loader) Format() domain.DatasetFormat {
	return domain.DatasetFormatJSON
}

// Load reads and decodes the file.
func (l *Loader) Load(ctx context.Context) ([]domain.Organization, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger.Section("Loading " + l.path)
	defer logger.Timed("json dataset load")()

	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w: %w", domain.ErrDatasetUnavailable, err)
	}
	defer f.Close()

	records, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", l.path, err)
	}
	logger.Info("Loaded %d organizations from %s", len(records), l.path)
	return records, nil
}

// record mirrors one object of the JSON array.
type record struct {
	ID       flexibleID `json:"id"`
	Name     string     `json:"name"`
	Type     string     `json:"type"`
	HelpType string     `json:"helpType"`
	Status   string     `json:"status"`
	Amount   string     `json:"amount"`
	Contact  string     `json:"contact"`
	Details  string     `json:"details"`
	Date     string     `json:"date"`
	Tags     []string   `json:"tags"`
	Source   string     `json:"source"`
}

// flexibleID accepts a JSON string or number.
type flexibleID string

// UnmarshalJSON implements json.Unmarshaler.
func (id *flexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*id = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = flexibleID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number, got %s", data)
	}
	if i, err := n.Int64(); err == nil {
		*id = flexibleID(strconv.FormatInt(i, 10))
		return nil
	}
	*id = flexibleID(n.String())
	return nil
}

// Decode reads a JSON array of organizations from r.
// Absent tags become an empty slice. Duplicate ids fail with
// domain.ErrDuplicateID.
func Decode(r io.Reader) ([]domain.Organization, error) {
	var raw []record
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode dataset: empty input: %w", domain.ErrInvalidInput)
		}
		return nil, fmt.Errorf("decode dataset: %w: %w", domain.ErrInvalidInput, err)
	}

	records := make([]domain.Organization, 0, len(raw))
	seen := make(map[string]int, len(raw))
	for i := range raw {
		org := raw[i].toDomain(i)
		if prev, ok := seen[org.ID]; ok {
			return nil, fmt.Errorf("id %q at records %d and %d: %w", org.ID, prev, i, domain.ErrDuplicateID)
		}
		seen[org.ID] = i
		records = append(records, org)
	}
	return records, nil
}

func (r *record) toDomain(position int) domain.Organization {
	id := string(r.ID)
	if id == "" {
		id = GenerateID(r.Name, position)
		logger.Debug("Record %d (%q) has no id, using %s", position, r.Name, id)
	}

	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}

	return domain.Organization{
		ID:       id,
		Name:     r.Name,
		Type:     r.Type,
		HelpType: r.HelpType,
		Status:   r.Status,
		Amount:   r.Amount,
		Contact:  r.Contact,
		Details:  r.Details,
		Date:     r.Date,
		Tags:     tags,
		Source:   r.Source,
	}
}

// GenerateID derives a stable key from a record's name and position.
func GenerateID(name string, position int) string {
	return uuid.NewSHA1(idNamespace, []byte(strconv.Itoa(position)+":"+name)).String()
}
