package primitive

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/toolkit"
)

// Property map keys understood by FromProperties and produced by Properties.
const (
	PropShape             = "shape"
	PropShapeColor        = "shapeColor"
	PropSlices            = "slices"
	PropStacks            = "stacks"
	PropScaleTopRadius    = "scaleTopRadius"
	PropScaleBottomRadius = "scaleBottomRadius"
	PropScaleHeight       = "scaleHeight"
	PropScaleRadius       = "scaleRadius"
	PropScaleDimensions   = "scaleDimensions"
	PropBevelPercentage   = "bevelPercentage"
	PropBevelSmoothness   = "bevelSmoothness"
	PropLightPosition     = "lightPosition"
)

// FromProperties builds a descriptor from a host property map.
//
// Numbers may be any Go integer or float type; vectors may be Vec3, Color,
// or a slice of numbers such as a decoded TOML array. A missing or unknown
// shape, or a value of the wrong type, is logged and the default kept.
// Out-of-range values are clamped with a warning. Without a light position
// the light is placed with DefaultLightPosition(vp).
func FromProperties(props map[string]any, vp Viewport) Descriptor {
	log := toolkit.Logger()
	d := DefaultDescriptor()

	if v, ok := props[PropShape]; ok {
		label, isString := v.(string)
		switch {
		case !isString:
			if k, isKind := v.(Kind); isKind {
				d.Kind = k
				break
			}
			log.Error("primitive: invalid type for shape", "value", v)
		default:
			k, err := ParseKind(label)
			if err != nil {
				log.Error("primitive: no known shape", "shape", label)
				break
			}
			d.Kind = k
		}
	} else {
		log.Error("primitive: no shape provided, using sphere")
	}

	if v, ok := props[PropShapeColor]; ok {
		if c, ok := toColor(v); ok {
			d.Color = c
		} else {
			log.Error("primitive: invalid type for color", "value", v)
		}
	}

	readInt(props, PropSlices, &d.Slices)
	readInt(props, PropStacks, &d.Stacks)
	readFloat(props, PropScaleTopRadius, &d.ScaleTopRadius)
	readFloat(props, PropScaleBottomRadius, &d.ScaleBottomRadius)
	readFloat(props, PropScaleHeight, &d.ScaleHeight)
	readFloat(props, PropScaleRadius, &d.ScaleRadius)
	readVec3(props, PropScaleDimensions, &d.ScaleDimensions)
	readFloat(props, PropBevelPercentage, &d.BevelPercentage)
	readFloat(props, PropBevelSmoothness, &d.BevelSmoothness)

	if v, ok := props[PropLightPosition]; ok {
		if p, ok := toVec3(v); ok {
			d.LightPosition = p
		} else {
			log.Error("primitive: invalid value for light position", "value", v)
			d.LightPosition = Vec3{}
		}
	} else {
		d.LightPosition = DefaultLightPosition(vp)
	}

	if c := d.Clamp(); c != d {
		log.Warn("primitive: parameters clamped",
			"slices", c.Slices, "stacks", c.Stacks,
			"bevel_percentage", c.BevelPercentage, "bevel_smoothness", c.BevelSmoothness,
			"dimensions", c.ScaleDimensions)
		d = c
	}
	return d
}

// Properties returns d as a host property map, the inverse of FromProperties.
func (d Descriptor) Properties() map[string]any {
	return map[string]any{
		PropShape:             d.Kind.String(),
		PropShapeColor:        d.Color,
		PropSlices:            d.Slices,
		PropStacks:            d.Stacks,
		PropScaleTopRadius:    d.ScaleTopRadius,
		PropScaleBottomRadius: d.ScaleBottomRadius,
		PropScaleHeight:       d.ScaleHeight,
		PropScaleRadius:       d.ScaleRadius,
		PropScaleDimensions:   d.ScaleDimensions,
		PropBevelPercentage:   d.BevelPercentage,
		PropBevelSmoothness:   d.BevelSmoothness,
		PropLightPosition:     d.LightPosition,
	}
}

func readInt(props map[string]any, key string, dst *int) {
	v, ok := props[key]
	if !ok {
		return
	}
	f, ok := toFloat(v)
	if !ok {
		toolkit.Logger().Error("primitive: invalid type for "+key, "value", v)
		return
	}
	// Bound to the exactly representable range before converting; Clamp
	// narrows it further.
	*dst = int(min(max(f, -maxExactInt), maxExactInt))
}

// maxExactInt is the largest integer a float32 holds exactly.
const maxExactInt = 1 << 24

func readFloat(props map[string]any, key string, dst *float32) {
	v, ok := props[key]
	if !ok {
		return
	}
	f, ok := toFloat(v)
	if !ok {
		toolkit.Logger().Error("primitive: invalid type for "+key, "value", v)
		return
	}
	*dst = f
}

func readVec3(props map[string]any, key string, dst *Vec3) {
	v, ok := props[key]
	if !ok {
		return
	}
	p, ok := toVec3(v)
	if !ok {
		toolkit.Logger().Error("primitive: invalid type for "+key, "value", v)
		return
	}
	*dst = p
}

// toFloat converts any Go number. NaN is rejected.
func toFloat(v any) (float32, bool) {
	f, ok := numberOf(v)
	if !ok || math32.IsNaN(f) {
		return 0, false
	}
	return f, true
}

func numberOf(v any) (float32, bool) {
	switch n := v.(type) {
	case float32:
		return n, true
	case float64:
		return float32(n), true
	case int:
		return float32(n), true
	case int32:
		return float32(n), true
	case int64:
		return float32(n), true
	case uint8:
		return float32(n), true
	case uint16:
		return float32(n), true
	case uint32:
		return float32(n), true
	default:
		return 0, false
	}
}

// toFloats converts a numeric slice of exactly n elements.
func toFloats(v any, n int) ([]float32, bool) {
	var out []float32
	switch s := v.(type) {
	case []float32:
		out = append(out, s...)
	case []float64:
		for _, f := range s {
			out = append(out, float32(f))
		}
	case []int:
		for _, i := range s {
			out = append(out, float32(i))
		}
	case []any:
		for _, e := range s {
			f, ok := toFloat(e)
			if !ok {
				return nil, false
			}
			out = append(out, f)
		}
	default:
		return nil, false
	}
	return out, len(out) == n
}

func toVec3(v any) (Vec3, bool) {
	if p, ok := v.(Vec3); ok {
		return p, true
	}
	f, ok := toFloats(v, 3)
	if !ok {
		return Vec3{}, false
	}
	return Vec3{f[0], f[1], f[2]}, true
}

func toColor(v any) (Color, bool) {
	if c, ok := v.(Color); ok {
		return c, true
	}
	f, ok := toFloats(v, 4)
	if !ok {
		return Color{}, false
	}
	return Color{f[0], f[1], f[2], f[3]}, true
}
