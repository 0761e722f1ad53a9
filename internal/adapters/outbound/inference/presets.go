package inference

import (
	"fmt"
	"slices"
	"strings"
)

var (
	imageNetMean = [3]float32{0.485, 0.456, 0.406}
	imageNetStd  = [3]float32{0.229, 0.224, 0.225}
	clipMean     = [3]float32{0.48145466, 0.4578275, 0.40821073}
	clipStd      = [3]float32{0.26862954, 0.26130258, 0.27577711}
)

// DefaultPreset is the preset used when none is configured.
const DefaultPreset = "nextbest"

// Preset describes a vision backbone and the preprocessing it was trained with.
type Preset struct {
	Name      string
	Model     string
	Resize    int
	Crop      int
	Mean      [3]float32
	Std       [3]float32
	Dimension int
}

var presets = map[string]Preset{
	"balanced": {Model: "convnextv2_base.fcmae_ft_in22k_in1k_384", Resize: 384, Crop: 384, Mean: imageNetMean, Std: imageNetStd, Dimension: 1024},
	"best":     {Model: "convnextv2_huge.fcmae_ft_in22k_in1k_384", Resize: 384, Crop: 384, Mean: imageNetMean, Std: imageNetStd, Dimension: 2816},
	"fast":     {Model: "efficientnet_b3.ra2_in1k", Resize: 320, Crop: 300, Mean: imageNetMean, Std: imageNetStd, Dimension: 1536},
	"fastest":  {Model: "mobilenetv3_large_100.ra_in1k", Resize: 256, Crop: 224, Mean: imageNetMean, Std: imageNetStd, Dimension: 1280},
	"semantic": {Model: "vit_base_patch16_clip_224.openai", Resize: 224, Crop: 224, Mean: clipMean, Std: clipStd, Dimension: 768},
	"nextbest": {Model: "ViT-H-14.laion2B-s32B-b79K", Resize: 224, Crop: 224, Mean: clipMean, Std: clipStd, Dimension: 1024},
	"newbest":  {Model: "ViT-bigG-14.laion2B-s39B-b160K", Resize: 224, Crop: 224, Mean: clipMean, Std: clipStd, Dimension: 1280},
}

// LookupPreset returns the named preset, case-insensitively.
func LookupPreset(name string) (Preset, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	p, ok := presets[key]
	if !ok {
		return Preset{}, fmt.Errorf("unknown embedding preset %q (available: %s)", name, strings.Join(PresetNames(), ", "))
	}
	p.Name = key
	return p, nil
}

// PresetNames returns the names of all presets in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
