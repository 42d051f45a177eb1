package fieldcheck

// Field is one named property under validation.
//
// A nil Value means the property is absent. A nil Message means the default
// violation message is used. Fields are plain values and are never mutated
// by a validation pass.
type Field struct {
	Name    string
	Value   *string
	Message *string
}

// FieldOption customizes a Field built by Present or Absent.
type FieldOption func(*Field)

// WithMessage sets the message that replaces DefaultMessage when the field is absent.
func WithMessage(msg string) FieldOption {
	return func(f *Field) {
		f.Message = &msg
	}
}

func newField(name string, value *string, opts ...FieldOption) Field {
	f := Field{
		Name:  name,
		Value: value,
	}
	for _, opt := range opts {
		opt(&f)
	}

	return f
}

// Present builds a Field holding value.
func Present(name, value string, opts ...FieldOption) Field {
	return newField(name, &value, opts...)
}

// Absent builds a Field without a value.
func Absent(name string, opts ...FieldOption) Field {
	return newField(name, nil, opts...)
}

// message returns the override message or DefaultMessage.
func (f Field) message() string {
	if f.Message != nil {
		return *f.Message
	}

	return DefaultMessage
}
