// Package siteconfig owns the default configuration tree and the rules used to
// overlay a partially specified document onto it.
package siteconfig

import (
	"bytes"
	"encoding/json"
	"errors"
	"sort"

	"github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/core/domain"
)

// Strategy is how a top-level field of a stored document combines with its base.
type Strategy int

const (
	// Scalar fields are replaced when present.
	Scalar Strategy = iota
	// Shallow objects take every present sub-key; absent sub-keys keep the base.
	Shallow
	// ReplaceIfNonEmpty lists wholly replace the base only when they have at
	// least one element. An empty list is treated exactly like an absent one.
	ReplaceIfNonEmpty
	// RecurseOnce objects are merged shallowly when well formed (otherwise the
	// whole base substructure is kept), and their nested lists follow
	// ReplaceIfNonEmpty.
	RecurseOnce
)

func (s Strategy) String() string {
	switch s {
	case Scalar:
		return "scalar"
	case Shallow:
		return "shallow"
	case ReplaceIfNonEmpty:
		return "replace-if-non-empty"
	case RecurseOnce:
		return "recurse-once"
	}
	return "unknown"
}

type merger func(dst *domain.SiteInfo, raw json.RawMessage)

type fieldRule struct {
	strategy Strategy
	merge    merger
}

// fieldRules is keyed by the JSON name of each SiteInfo field.
var fieldRules = map[string]fieldRule{
	"contacts":     {Shallow, shallow(func(s *domain.SiteInfo) *domain.Contacts { return &s.Contacts })},
	"brand":        {Shallow, shallow(func(s *domain.SiteInfo) *domain.Brand { return &s.Brand })},
	"seo":          {Shallow, shallow(func(s *domain.SiteInfo) *domain.SEO { return &s.SEO })},
	"theme":        {Shallow, shallow(func(s *domain.SiteInfo) *domain.Theme { return &s.Theme })},
	"hero":         {Shallow, shallow(func(s *domain.SiteInfo) *domain.Hero { return &s.Hero })},
	"blocks":       {Shallow, shallow(func(s *domain.SiteInfo) *domain.Blocks { return &s.Blocks })},
	"tariffsBlock": {Shallow, shallow(func(s *domain.SiteInfo) *domain.TariffsBlock { return &s.TariffsBlock })},
	"footer":       {Shallow, shallow(func(s *domain.SiteInfo) *domain.Footer { return &s.Footer })},

	"faq":        {ReplaceIfNonEmpty, list(func(s *domain.SiteInfo) *[]domain.FAQItem { return &s.FAQ })},
	"trustFacts": {ReplaceIfNonEmpty, list(func(s *domain.SiteInfo) *[]domain.TrustFact { return &s.TrustFacts })},
	"blockOrder": {ReplaceIfNonEmpty, list(func(s *domain.SiteInfo) *[]domain.BlockID { return &s.BlockOrder })},

	"header": {RecurseOnce, recurseOnce(
		func(s *domain.SiteInfo) *domain.Header { return &s.Header },
		nestedList("navItems", func(h *domain.Header) *[]domain.NavItem { return &h.NavItems }),
	)},
	"design": {RecurseOnce, recurseOnce(
		func(s *domain.SiteInfo) *domain.Design { return &s.Design },
	)},
	"featuresBlock": {RecurseOnce, recurseOnce(
		func(s *domain.SiteInfo) *domain.FeaturesBlock { return &s.FeaturesBlock },
		nestedList("items", func(f *domain.FeaturesBlock) *[]domain.FeatureItem { return &f.Items }),
	)},

	"authUrl":      {Scalar, scalar(func(s *domain.SiteInfo) *string { return &s.AuthURL })},
	"registerUrl":  {Scalar, scalar(func(s *domain.SiteInfo) *string { return &s.RegisterURL })},
	"connectUrl":   {Scalar, scalar(func(s *domain.SiteInfo) *string { return &s.ConnectURL })},
	"siteUrl":      {Scalar, scalar(func(s *domain.SiteInfo) *string { return &s.SiteURL })},
	"logoUrl":      {Scalar, scalar(func(s *domain.SiteInfo) *string { return &s.LogoURL })},
	"offerta":      {Scalar, scalar(func(s *domain.SiteInfo) *string { return &s.Offerta })},
	"agreement":    {Scalar, scalar(func(s *domain.SiteInfo) *string { return &s.Agreement })},
	"instructions": {Scalar, scalar(func(s *domain.SiteInfo) *string { return &s.Instructions })},
}

// StrategyFor reports the merge strategy of a top-level field.
func StrategyFor(field string) (Strategy, bool) {
	r, ok := fieldRules[field]
	return r.strategy, ok
}

// Fields lists every top-level field the merge engine knows, sorted.
func Fields() []string {
	names := make([]string, 0, len(fieldRules))
	for name := range fieldRules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve turns a stored document into a complete configuration. Nil, empty,
// malformed or non-object input yields a fresh copy of Defaults.
func Resolve(stored []byte) domain.SiteInfo {
	if !isObject(stored) || !json.Valid(stored) {
		return Defaults()
	}
	return Overlay(Defaults(), stored)
}

// Overlay applies patch to a copy of base following the field rules. Unknown
// fields, null values and values of the wrong JSON type are ignored; base is
// never modified.
func Overlay(base domain.SiteInfo, patch []byte) domain.SiteInfo {
	out := cloneJSON(base)

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(patch, &fields); err != nil {
		return out
	}
	for name, raw := range fields {
		rule, ok := fieldRules[name]
		if !ok || isNull(raw) {
			continue
		}
		rule.merge(&out, raw)
	}
	return out
}

func scalar(get func(*domain.SiteInfo) *string) merger {
	return func(dst *domain.SiteInfo, raw json.RawMessage) {
		var v string
		if err := json.Unmarshal(raw, &v); err == nil {
			*get(dst) = v
		}
	}
}

func shallow[T any](get func(*domain.SiteInfo) *T) merger {
	return func(dst *domain.SiteInfo, raw json.RawMessage) {
		overlayObject(get(dst), raw)
	}
}

func list[E any](get func(*domain.SiteInfo) *[]E) merger {
	return func(dst *domain.SiteInfo, raw json.RawMessage) {
		replaceIfNonEmpty(get(dst), raw)
	}
}

// nested applies a rule to one key of an already merged sub-object, with the
// pre-merge value available as base.
type nested[T any] func(merged, base *T, keys map[string]json.RawMessage)

func nestedList[T, E any](key string, get func(*T) *[]E) nested[T] {
	return func(merged, base *T, keys map[string]json.RawMessage) {
		*get(merged) = *get(base)
		if raw, ok := keys[key]; ok {
			replaceIfNonEmpty(get(merged), raw)
		}
	}
}

func recurseOnce[T any](get func(*domain.SiteInfo) *T, lists ...nested[T]) merger {
	return func(dst *domain.SiteInfo, raw json.RawMessage) {
		target := get(dst)
		base := *target
		if !overlayObject(target, raw) {
			return
		}
		var keys map[string]json.RawMessage
		if err := json.Unmarshal(raw, &keys); err != nil {
			return
		}
		for _, apply := range lists {
			apply(target, &base, keys)
		}
	}
}

// overlayObject decodes the keys present in raw onto a copy of *dst and stores
// the result. Sub-keys with a mismatched type are skipped by the decoder and
// keep their previous value, and so do null sub-keys. It reports false, leaving dst alone, when raw is
// not a JSON object.
func overlayObject[T any](dst *T, raw json.RawMessage) bool {
	if !isObject(raw) {
		return false
	}
	raw = dropNullKeys(raw)
	next := cloneJSON(*dst)
	err := json.Unmarshal(raw, &next)
	var typeErr *json.UnmarshalTypeError
	if err != nil && !errors.As(err, &typeErr) {
		return false
	}
	*dst = next
	return true
}

// dropNullKeys removes top-level null members from a JSON object. Decoding a
// null clears slices and maps, which would wipe out ordered lists.
func dropNullKeys(raw json.RawMessage) json.RawMessage {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		return raw
	}
	dropped := false
	for k, v := range keys {
		if isNull(v) {
			delete(keys, k)
			dropped = true
		}
	}
	if !dropped {
		return raw
	}
	out, err := json.Marshal(keys)
	if err != nil {
		return raw
	}
	return out
}

func replaceIfNonEmpty[E any](dst *[]E, raw json.RawMessage) {
	var items []E
	if err := json.Unmarshal(raw, &items); err != nil || len(items) == 0 {
		return
	}
	*dst = items
}

// cloneJSON deep-copies plain data types so decoding never writes into a
// backing array shared with the caller.
func cloneJSON[T any](v T) T {
	var out T
	b, err := json.Marshal(v)
	if err != nil {
		return v
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return v
	}
	return out
}

func isObject(raw []byte) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '{'
}

func isNull(raw []byte) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
