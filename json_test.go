package oserr_test

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/jmgilman/go/oserr"
	"github.com/stretchr/testify/require"
)

func TestJSON_ConnectionReset(t *testing.T) {
	err := oserr.FromCode(104).SetField("test", oserr.StringValue("hello"))

	s := err.Error()
	require.Equal(t, `{"error":"ConnectionReset","test":"hello"}`, s)

	back, perr := oserr.Parse(s)
	require.NoError(t, perr)
	require.Equal(t, oserr.KindConnectionReset, back.Kind())
	require.True(t, err.Equal(back))

	v, ok := back.StringField("test")
	require.True(t, ok)
	require.Equal(t, "hello", v)
}

func TestJSON_EFAULT(t *testing.T) {
	err := oserr.FromCode(14)
	require.Equal(t, `{"error":"EFAULT"}`, err.Error())

	back, perr := oserr.Parse(err.Error())
	require.NoError(t, perr)
	require.Equal(t, oserr.EFAULT, back.Errno())
	require.Equal(t, oserr.KindOther, back.Kind())
	require.Equal(t, "EFAULT", back.StrKind())
}

func TestJSON_CustomKind(t *testing.T) {
	err := oserr.New("CustomMsg")
	require.Equal(t, `{"error":"CustomMsg"}`, err.Error())
	require.Equal(t, oserr.KindOther, err.Kind())
	require.Equal(t, oserr.EOTHER, err.Errno())
	require.Equal(t, "CustomMsg", err.StrKind())

	back, perr := oserr.Parse(err.Error())
	require.NoError(t, perr)
	require.True(t, err.Equal(back))
}

func TestJSON_Message(t *testing.T) {
	const text = `{"error":"NotFound","message":"a message"}`

	err, perr := oserr.Parse(text)
	require.NoError(t, perr)

	msg, ok := err.Message()
	require.True(t, ok)
	require.Equal(t, "a message", msg)
	require.Equal(t, text, err.Error())
}

func TestJSON_RoundTripPaths(t *testing.T) {
	tests := []struct {
		name string
		err  *oserr.Error
	}{
		{"kind", oserr.FromKind(oserr.KindTimedOut)},
		{"every kind string", oserr.FromKind(oserr.KindOutOfMemory)},
		{"code with kind", oserr.FromCode(2)},
		{"generic code", oserr.FromCode(14)},
		{"unknown code", oserr.FromCode(-999999)},
		{"custom string", oserr.New("CustomMsg")},
		{"errno string", oserr.New("EIO")},
		{"other", oserr.New("Other")},
		{"message", oserr.NewWithMessage("EFAULT", "bad pointer")},
		{
			"all value types",
			oserr.New("ConnectionReset").
				SetField("null", oserr.NullValue()).
				SetField("bool", oserr.BoolValue(false)).
				SetField("i64", oserr.Int64Value(math.MinInt64)).
				SetField("u64", oserr.Uint64Value(math.MaxUint64)).
				SetField("f64", oserr.Float64Value(2)).
				SetField("str", oserr.StringValue("<tag> & \"quote\"")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			back, err := oserr.Parse(tt.err.Error())
			require.NoError(t, err)
			require.True(t, tt.err.Equal(back), "%s != %s", tt.err, back)
			require.Equal(t, tt.err.Kind(), back.Kind())
			require.Equal(t, tt.err.Errno(), back.Errno())
			require.Equal(t, tt.err.StrKind(), back.StrKind())
			require.Equal(t, tt.err.Error(), back.Error())
		})
	}
}

func TestJSON_EveryKindRoundTrips(t *testing.T) {
	for _, k := range oserr.Kinds() {
		back, err := oserr.Parse(oserr.FromKind(k).Error())
		require.NoError(t, err)
		require.Equal(t, k, back.Kind())
	}
}

func TestJSON_EveryErrnoRoundTrips(t *testing.T) {
	for _, e := range oserr.Errnos() {
		back, err := oserr.Parse(oserr.FromErrno(e).Error())
		require.NoError(t, err)
		require.Equal(t, e, back.Errno())
	}
}

func TestJSON_OSField(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		strKind string
		errno   oserr.Errno
	}{
		{"other with code", `{"error":"Other","os":14}`, "EFAULT", oserr.EFAULT},
		{"eother with code", `{"error":"EOTHER","os":5}`, "EIO", oserr.EIO},
		{"code with kind", `{"error":"Other","os":2}`, "NotFound", oserr.ENOENT},
		{"ignored for kinds", `{"error":"NotFound","os":14}`, "NotFound", oserr.ENOENT},
		{"ignored for custom", `{"error":"Custom","os":14}`, "Custom", oserr.EOTHER},
		{"non-integer code", `{"error":"Other","os":"14"}`, "Other", oserr.EOTHER},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err, perr := oserr.Parse(tt.in)
			require.NoError(t, perr)
			require.Equal(t, tt.strKind, err.StrKind())
			require.Equal(t, tt.errno, err.Errno())

			_, ok := err.Field("os")
			require.False(t, ok)
			require.NotContains(t, err.Error(), `"os"`)
		})
	}
}

func TestJSON_NumberTypes(t *testing.T) {
	err, perr := oserr.Parse(`{"error":"Other","a":1,"b":-1,"c":1.0,"d":18446744073709551615,"e":1e2}`)
	require.NoError(t, perr)

	a, _ := err.Field("a")
	require.Equal(t, oserr.Int64Value(1), a)
	b, _ := err.Field("b")
	require.Equal(t, oserr.Int64Value(-1), b)
	c, _ := err.Field("c")
	require.Equal(t, oserr.Float64Value(1), c)
	d, _ := err.Field("d")
	require.Equal(t, oserr.Uint64Value(math.MaxUint64), d)
	e, _ := err.Field("e")
	require.Equal(t, oserr.Float64Value(100), e)
}

func TestJSON_Malformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
		msg  string
	}{
		{"missing error", `{"message":"hi"}`, "required 'error' field is missing"},
		{"error not string", `{"error":5}`, "required 'error' field is not a string"},
		{"error null", `{"error":null}`, "required 'error' field is not a string"},
		{"array", `["error"]`, "expected a JSON object"},
		{"string", `"NotFound"`, "expected a JSON object"},
		{"nested object", `{"error":"Other","x":{"a":1}}`, `field "x": only JSON primitives are supported`},
		{"nested array", `{"error":"Other","x":[1]}`, `field "x": only JSON primitives are supported`},
		{"trailing data", `{"error":"Other"} {}`, "unexpected data after JSON object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err, perr := oserr.Parse(tt.in)
			require.Nil(t, err)
			require.Error(t, perr)

			var e *oserr.Error
			require.True(t, errors.As(perr, &e))
			require.Equal(t, oserr.KindInvalidData, e.Kind())

			msg, ok := e.Message()
			require.True(t, ok)
			require.Equal(t, tt.msg, msg)
		})
	}
}

func TestJSON_Syntax(t *testing.T) {
	for _, in := range []string{``, `{`, `{"error":}`, `{"error":"Other",}`, `nul`} {
		_, err := oserr.Parse(in)
		require.Error(t, err, "input %q", in)
		require.Equal(t, oserr.KindInvalidData, oserr.KindOf(err))
	}
}

func TestJSON_DuplicateKeys(t *testing.T) {
	err, perr := oserr.Parse(`{"error":"Other","a":1,"b":2,"a":3}`)
	require.NoError(t, perr)
	require.Equal(t, `{"error":"Other","a":3,"b":2}`, err.Error())
}

func TestJSON_ErrorKeyPosition(t *testing.T) {
	err, perr := oserr.Parse(`{"attempt":2,"error":"TimedOut"}`)
	require.NoError(t, perr)
	require.Equal(t, oserr.KindTimedOut, err.Kind())
	require.Equal(t, `{"error":"TimedOut","attempt":2}`, err.Error())
}

func TestJSON_StdlibIntegration(t *testing.T) {
	type envelope struct {
		Op  string       `json:"op"`
		Err *oserr.Error `json:"err"`
		Alt *oserr.Error `json:"alt,omitempty"`
	}

	in := envelope{Op: "read", Err: oserr.FromCode(14).SetField("fd", oserr.Int64Value(3))}
	b, err := json.Marshal(in)
	require.NoError(t, err)
	require.Equal(t, `{"op":"read","err":{"error":"EFAULT","fd":3}}`, string(b))

	var out envelope
	require.NoError(t, json.Unmarshal(b, &out))
	require.Equal(t, "read", out.Op)
	require.True(t, in.Err.Equal(out.Err))
	require.Nil(t, out.Alt)
}

func TestJSON_StdlibRejectsInvalid(t *testing.T) {
	var e oserr.Error
	err := json.Unmarshal([]byte(`{"message":"x"}`), &e)
	require.Error(t, err)
	require.Equal(t, oserr.KindInvalidData, oserr.KindOf(err))
}

func TestJSON_NonFiniteFloat(t *testing.T) {
	err := oserr.FromKind(oserr.KindOther).SetField("ratio", oserr.Float64Value(math.NaN()))
	require.Equal(t, `{"error":"Other","ratio":null}`, err.Error())
}
