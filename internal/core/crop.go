package core

import (
	"fmt"
	"math"
)

// CropPlan is the resize-then-center-crop geometry that maps a source
// image onto a target box without letterboxing. The resized image
// always covers the target (ResizeWidth >= CropWidth, ResizeHeight >=
// CropHeight) with equality on the limiting dimension, and the crop
// box is centered with floor division.
type CropPlan struct {
	ResizeWidth  int
	ResizeHeight int
	CropLeft     int
	CropTop      int
	CropWidth    int
	CropHeight   int
}

// PlanCrop computes cover-then-center-crop geometry for scaling a
// source of origW x origH onto targetW x targetH. The crop box never
// extends outside the resized bounds; the cover computation guarantees
// that algebraically, so no defensive clamping happens here.
func PlanCrop(origW, origH, targetW, targetH int) (CropPlan, error) {
	if origW <= 0 || origH <= 0 {
		return CropPlan{}, fmt.Errorf("source dimensions %dx%d: %w", origW, origH, ErrInvalidArgument)
	}
	if targetW <= 0 || targetH <= 0 {
		return CropPlan{}, fmt.Errorf("target dimensions %dx%d: %w", targetW, targetH, ErrInvalidArgument)
	}

	origAspect := float64(origW) / float64(origH)
	targetAspect := float64(targetW) / float64(targetH)

	var resizeW, resizeH int
	if origAspect > targetAspect {
		// Source relatively wider: match height, overflow width.
		resizeH = targetH
		resizeW = int(math.Round(float64(targetH) * origAspect))
	} else {
		// Source relatively taller or equal: match width.
		resizeW = targetW
		resizeH = int(math.Round(float64(targetW) / origAspect))
	}

	return CropPlan{
		ResizeWidth:  resizeW,
		ResizeHeight: resizeH,
		CropLeft:     (resizeW - targetW) / 2,
		CropTop:      (resizeH - targetH) / 2,
		CropWidth:    targetW,
		CropHeight:   targetH,
	}, nil
}
