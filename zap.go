package oserr

import "go.uber.org/zap/zapcore"

var _ zapcore.ObjectMarshaler = (*Error)(nil)

// MarshalLogObject implements zapcore.ObjectMarshaler so an Error can be logged
// as a structured object with its wire fields:
//
//	logger.Error("read failed", zap.Object("err", err))
func (e *Error) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if e == nil {
		return nil
	}

	enc.AddString(fieldError, e.wireKind())
	for _, f := range e.fields.entries {
		if isStructural(f.name) {
			continue
		}
		switch f.value.kind {
		case ValueBool:
			enc.AddBool(f.name, f.value.b)
		case ValueI64:
			enc.AddInt64(f.name, f.value.i)
		case ValueU64:
			enc.AddUint64(f.name, f.value.u)
		case ValueF64:
			enc.AddFloat64(f.name, f.value.f)
		case ValueString:
			enc.AddString(f.name, f.value.s)
		default:
			if err := enc.AddReflected(f.name, nil); err != nil {
				return err
			}
		}
	}
	return nil
}
