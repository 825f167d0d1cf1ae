package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chabad360/go-osc/v2/osc"
)

// parseArgument converts one command line argument into an OSC argument.
// Valued arguments are written tag:value, nullary ones as the bare tag:
//
//	i:42  f:0.5  s:text  b:cafe  t:1.5  T  F  N  I
func parseArgument(s string) (osc.Argument, error) {
	tag, value, hasValue := strings.Cut(s, ":")
	if len(tag) != 1 {
		return nil, fmt.Errorf("argument %q: want <tag>:<value> or a single tag", s)
	}

	switch t := osc.TypeTag(tag[0]); t {
	case osc.TypeTrue, osc.TypeFalse, osc.TypeNil, osc.TypeImpulse:
		if hasValue {
			return nil, fmt.Errorf("argument %q: %s takes no value", s, t)
		}
	default:
		if !hasValue {
			return nil, fmt.Errorf("argument %q: %s needs a value", s, t)
		}
	}

	switch t := osc.TypeTag(tag[0]); t {
	case osc.TypeInt32:
		i, err := strconv.ParseInt(value, 0, 32)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", s, err)
		}
		return osc.Int32(i), nil
	case osc.TypeFloat32:
		f, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", s, err)
		}
		return osc.Float(f), nil
	case osc.TypeString:
		return osc.String(value), nil
	case osc.TypeBlob:
		b, err := hex.DecodeString(value)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", s, err)
		}
		return osc.Blob(b), nil
	case osc.TypeTimeTag:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", s, err)
		}
		return osc.NewTimetagFromSeconds(f), nil
	case osc.TypeTrue:
		return osc.True{}, nil
	case osc.TypeFalse:
		return osc.False{}, nil
	case osc.TypeNil:
		return osc.Nil{}, nil
	case osc.TypeImpulse:
		return osc.Impulse{}, nil
	default:
		return nil, fmt.Errorf("argument %q: unknown type tag %s", s, t)
	}
}

// buildPacket returns the message address(args...), wrapped in a bundle with
// the given time tag when bundle is set.
func buildPacket(address string, args []string, bundle bool, tt osc.Timetag) (osc.Packet, error) {
	msg := osc.NewMessage(address)
	for _, a := range args {
		arg, err := parseArgument(a)
		if err != nil {
			return nil, err
		}
		msg.Append(arg)
	}
	if !bundle {
		return msg, nil
	}
	return osc.NewBundleWithTimetag(tt, msg), nil
}

// printPacket writes a human readable tree of p.
func printPacket(w io.Writer, p osc.Packet, indent string) {
	switch p := p.(type) {
	case *osc.Message:
		fmt.Fprintf(w, "%s%s\n", indent, p)
	case *osc.Bundle:
		fmt.Fprintf(w, "%s#bundle %.6f (%d elements)\n", indent, p.Timetag.Seconds(), len(p.Elements))
		for _, elem := range p.Elements {
			printPacket(w, elem, indent+"  ")
		}
	}
}
