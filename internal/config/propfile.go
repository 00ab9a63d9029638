// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadUserProperties builds the user property bag from the optional
// properties file at path and the command-line overrides. Keys present in
// overrides replace the file values. An empty path reads no file.
func LoadUserProperties(path string, overrides map[string]string) (*Properties, error) {
	props := NewProperties(SourceUser)

	if path != "" {
		fromFile, err := ReadPropertiesFile(path)
		if err != nil {
			return nil, err
		}
		if err := props.Merge(fromFile, false); err != nil {
			return nil, err
		}
	}

	if err := props.Merge(overrides, true); err != nil {
		return nil, err
	}

	return props, nil
}

// ReadPropertiesFile reads a JSON (.json) or YAML (.yaml, .yml) document of
// properties.
//
// Nested objects are flattened with "." so that
//
//	cache:
//	  asset:
//	    max.size: 100
//
// yields cache.asset.max.size=100. Sequences are joined with "," to form a
// list value. Scalars keep their textual form, null becomes "".
func ReadPropertiesFile(path string) (map[string]string, error) {
	var doc map[string]any
	if err := DecodeFile(path, &doc); err != nil {
		return nil, err
	}

	props := make(map[string]string)
	if err := flatten(props, "", doc); err != nil {
		return nil, fmt.Errorf("error decoding properties file %s: %w", path, err)
	}
	return props, nil
}

// DecodeFile decodes the JSON (.json) or YAML (.yaml, .yml) document at path
// into v. JSON numbers decode as [json.Number] when v holds interfaces. An
// empty document leaves v untouched.
func DecodeFile(path string, v any) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error reading file %s: %w", path, err)
	}
	defer file.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		dec := json.NewDecoder(file)
		dec.UseNumber()
		err = dec.Decode(v)
	case ".yaml", ".yml":
		err = yaml.NewDecoder(file).Decode(v)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedPropertiesFile, ext)
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("error decoding file %s: %w", path, err)
	}
	return nil
}

func flatten(out map[string]string, prefix string, v any) error {
	switch value := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(value))
		for k := range value {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if err := flatten(out, joinKey(prefix, k), value[k]); err != nil {
				return err
			}
		}
		return nil
	case []any:
		items := make([]string, 0, len(value))
		for _, item := range value {
			s, err := scalar(prefix, item)
			if err != nil {
				return err
			}
			items = append(items, s)
		}
		out[prefix] = strings.Join(items, ",")
		return nil
	default:
		s, err := scalar(prefix, value)
		if err != nil {
			return err
		}
		out[prefix] = s
		return nil
	}
}

func scalar(key string, v any) (string, error) {
	switch value := v.(type) {
	case nil:
		return "", nil
	case string:
		return value, nil
	case bool:
		return strconv.FormatBool(value), nil
	case int:
		return strconv.Itoa(value), nil
	case int64:
		return strconv.FormatInt(value, 10), nil
	case uint64:
		return strconv.FormatUint(value, 10), nil
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64), nil
	case json.Number:
		return value.String(), nil
	default:
		return "", fmt.Errorf("property %q: unsupported value of type %T", key, v)
	}
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
