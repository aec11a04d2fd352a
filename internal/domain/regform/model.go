package regform

// FieldType discriminates the per-type validation and rendering of a
// form field.
type FieldType string

const (
	FieldText        FieldType = "text"
	FieldTextarea    FieldType = "textarea"
	FieldNumber      FieldType = "number"
	FieldDate        FieldType = "date"
	FieldSelect      FieldType = "select"
	FieldMultiselect FieldType = "multiselect"
	FieldCheckbox    FieldType = "checkbox"
	FieldFile        FieldType = "file"
	FieldEmail       FieldType = "email"
	FieldPhone       FieldType = "phone"
)

var knownFieldTypes = map[FieldType]bool{
	FieldText:        true,
	FieldTextarea:    true,
	FieldNumber:      true,
	FieldDate:        true,
	FieldSelect:      true,
	FieldMultiselect: true,
	FieldCheckbox:    true,
	FieldFile:        true,
	FieldEmail:       true,
	FieldPhone:       true,
}

func (t FieldType) Valid() bool { return knownFieldTypes[t] }

// HasOptions reports whether the type carries a declared option list.
func (t FieldType) HasOptions() bool {
	return t == FieldSelect || t == FieldMultiselect
}

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type Operator string

const (
	OpEquals    Operator = "equals"
	OpNotEquals Operator = "notEquals"
	OpContains  Operator = "contains"
)

func (o Operator) Valid() bool {
	return o == OpEquals || o == OpNotEquals || o == OpContains
}

// Conditional makes a field visible (and required) only when another
// field's answer matches.
type Conditional struct {
	DependsOn string   `json:"depends_on_field_id"`
	Operator  Operator `json:"operator"`
	Value     string   `json:"value"`
}

// Rules holds the optional per-field constraints. Zero values mean
// "no constraint"; pointer fields distinguish 0 from unset.
type Rules struct {
	MinLength    int      `json:"min_length,omitempty"`
	MaxLength    int      `json:"max_length,omitempty"`
	Min          *float64 `json:"min,omitempty"`
	Max          *float64 `json:"max,omitempty"`
	Pattern      string   `json:"pattern,omitempty"`
	MaxFileSize  int64    `json:"max_file_size,omitempty"`
	AllowedTypes []string `json:"allowed_types,omitempty"`
}

type FormField struct {
	ID          string       `json:"id"`
	Type        FieldType    `json:"type"`
	Label       string       `json:"label"`
	HelpText    string       `json:"help_text,omitempty"`
	Required    bool         `json:"required"`
	Options     []Option     `json:"options,omitempty"`
	Rules       *Rules       `json:"rules,omitempty"`
	Conditional *Conditional `json:"conditional,omitempty"`
	Order       int          `json:"order"`
}

// FileRef points at an uploaded object in external storage. The file
// bytes themselves never touch the registration tables.
type FileRef struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}

// AnswerMap is the participant's input keyed by field id. Values are
// runtime-typed per the field's FieldType and validated at the
// boundary, never trusted structurally.
type AnswerMap map[string]any
