package templates

import "errors"

// Every error produced by template handling wraps one of these, use
// errors.Is to classify.
var (
	ErrInvalidTemplateName        = errors.New("invalid template name")
	ErrInvalidPropertyForRuleKind = errors.New("invalid property for rule kind")
	ErrMalformedRule              = errors.New("malformed rule")
	ErrInvalidArgument            = errors.New("invalid argument")
	ErrUnknownTemplate            = errors.New("unknown template")
)
