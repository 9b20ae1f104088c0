package errx

import "fmt"

type codeDef struct {
	typ        Type
	httpStatus int
	message    string
}

// Registry holds the error codes of one domain under a common prefix
type Registry struct {
	prefix string
	codes  map[Code]codeDef
}

// NewRegistry creates a registry whose codes are prefixed with prefix
func NewRegistry(prefix string) *Registry {
	return &Registry{
		prefix: prefix,
		codes:  make(map[Code]codeDef),
	}
}

// Register adds a code to the registry. Registering the same name twice panics.
func (r *Registry) Register(name string, t Type, httpStatus int, message string) Code {
	code := Code(fmt.Sprintf("%s_%s", r.prefix, name))
	if _, exists := r.codes[code]; exists {
		panic(fmt.Sprintf("errx: code %s registered twice", code))
	}
	r.codes[code] = codeDef{typ: t, httpStatus: httpStatus, message: message}
	return code
}

// New builds a fresh error for a registered code
func (r *Registry) New(code Code) *Error {
	def, ok := r.codes[code]
	if !ok {
		return &Error{
			Code:       code,
			Type:       TypeInternal,
			HTTPStatus: TypeInternal.HTTPStatus(),
			Message:    "unregistered error code",
		}
	}
	return &Error{
		Code:       code,
		Type:       def.typ,
		HTTPStatus: def.httpStatus,
		Message:    def.message,
	}
}

// NewWithMessage builds an error for a registered code with a custom message
func (r *Registry) NewWithMessage(code Code, message string) *Error {
	return r.New(code).WithMessage(message)
}
