// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package udf

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	apperrors "github.com/NVIDIA/verkey/pkg/errors"
	"github.com/NVIDIA/verkey/pkg/version"
)

const (
	// Name is the name hosts register the function under.
	Name = "semver_value"

	// ArgCount is the exact number of positional arguments.
	ArgCount = 2
)

// Usage formats the usage message for a call with argCount arguments.
func Usage(argCount int) string {
	return fmt.Sprintf("usage: %s(semver: str, segments: int8). Got %d args", Name, argCount)
}

// CheckArgs verifies the argument count.
func CheckArgs(args []any) error {
	if len(args) != ArgCount {
		return apperrors.NewWithContext(apperrors.ErrCodeUsage, Usage(len(args)),
			map[string]any{"args": len(args)})
	}
	return nil
}

// Coerce converts the raw arguments to (version, segments).
func Coerce(args []any) (string, int64, error) {
	if err := CheckArgs(args); err != nil {
		return "", 0, err
	}

	v, err := ToText(args[0])
	if err != nil {
		return "", 0, apperrors.WrapWithContext(apperrors.ErrCodeUsage, Usage(len(args)), err,
			map[string]any{"arg": 0})
	}
	n, err := ToInt(args[1])
	if err != nil {
		return "", 0, apperrors.WrapWithContext(apperrors.ErrCodeUsage, Usage(len(args)), err,
			map[string]any{"arg": 1})
	}
	return v, n, nil
}

// Call runs semver_value over raw host arguments.
func Call(args ...any) (string, error) {
	v, n, err := Coerce(args)
	if err != nil {
		return "", err
	}
	// values beyond int range can never be valid segment counts
	segments := version.MaxSegments + 1
	if n >= math.MinInt32 && n <= math.MaxInt32 {
		segments = int(n)
	}
	return version.Encode(v, segments)
}

// ToText coerces a host value to a string.
func ToText(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case []byte:
		return string(t), nil
	case fmt.Stringer:
		return t.String(), nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", t), nil
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(t), nil
	default:
		return "", fmt.Errorf("cannot coerce %T to text", v)
	}
}

// ToInt coerces a host value to a signed integer. Floats are truncated toward
// zero; strings must hold a base-10 integer, optionally surrounded by spaces.
func ToInt(v any) (int64, error) {
	switch t := v.(type) {
	case int:
		return int64(t), nil
	case int8:
		return int64(t), nil
	case int16:
		return int64(t), nil
	case int32:
		return int64(t), nil
	case int64:
		return t, nil
	case uint:
		return uintToInt(uint64(t))
	case uint8:
		return int64(t), nil
	case uint16:
		return int64(t), nil
	case uint32:
		return int64(t), nil
	case uint64:
		return uintToInt(t)
	case float32:
		return floatToInt(float64(t))
	case float64:
		return floatToInt(t)
	case bool:
		if t {
			return 1, nil
		}
		return 0, nil
	case string:
		return parseInt(t)
	case []byte:
		return parseInt(string(t))
	default:
		return 0, fmt.Errorf("cannot coerce %T to integer", v)
	}
}

func parseInt(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("cannot coerce %q to integer: %w", s, err)
	}
	return n, nil
}

func uintToInt(u uint64) (int64, error) {
	if u > math.MaxInt64 {
		return 0, fmt.Errorf("integer %d overflows int64", u)
	}
	return int64(u), nil
}

func floatToInt(f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, fmt.Errorf("cannot coerce %v to integer", f)
	}
	return int64(f), nil
}
