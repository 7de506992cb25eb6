package core

import (
	"errors"
	"testing"
)

func TestPlanCrop(t *testing.T) {
	tests := []struct {
		name                   string
		origW, origH           int
		targetW, targetH       int
		wantResizeW, wantResizeH int
		wantLeft, wantTop      int
	}{
		{
			name:  "same aspect upscales exactly",
			origW: 1600, origH: 900, targetW: 1920, targetH: 1080,
			wantResizeW: 1920, wantResizeH: 1080, wantLeft: 0, wantTop: 0,
		},
		{
			name:  "wider source matches height and crops sides",
			origW: 4000, origH: 1000, targetW: 1920, targetH: 1080,
			wantResizeW: 4320, wantResizeH: 1080, wantLeft: 1200, wantTop: 0,
		},
		{
			name:  "taller source matches width and crops top and bottom",
			origW: 1000, origH: 2000, targetW: 1920, targetH: 1080,
			wantResizeW: 1920, wantResizeH: 3840, wantLeft: 0, wantTop: 1380,
		},
		{
			name:  "square source onto landscape",
			origW: 500, origH: 500, targetW: 1280, targetH: 720,
			wantResizeW: 1280, wantResizeH: 1280, wantLeft: 0, wantTop: 280,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := PlanCrop(tt.origW, tt.origH, tt.targetW, tt.targetH)
			if err != nil {
				t.Fatal(err)
			}
			if plan.ResizeWidth != tt.wantResizeW || plan.ResizeHeight != tt.wantResizeH {
				t.Errorf("resize = %dx%d, want %dx%d",
					plan.ResizeWidth, plan.ResizeHeight, tt.wantResizeW, tt.wantResizeH)
			}
			if plan.CropLeft != tt.wantLeft || plan.CropTop != tt.wantTop {
				t.Errorf("crop origin = (%d,%d), want (%d,%d)",
					plan.CropLeft, plan.CropTop, tt.wantLeft, tt.wantTop)
			}
			if plan.CropWidth != tt.targetW || plan.CropHeight != tt.targetH {
				t.Errorf("crop box = %dx%d, want %dx%d",
					plan.CropWidth, plan.CropHeight, tt.targetW, tt.targetH)
			}
		})
	}
}

func TestPlanCropCoverContainment(t *testing.T) {
	// The resized image must always cover the target box and the crop
	// box must stay inside the resized bounds, across odd shapes.
	dims := []struct{ ow, oh, tw, th int }{
		{1, 1, 1920, 1080},
		{7, 3, 100, 100},
		{3, 7, 100, 100},
		{1919, 1081, 1920, 1080},
		{641, 480, 640, 480},
		{12345, 6789, 720, 1280},
	}
	for _, d := range dims {
		plan, err := PlanCrop(d.ow, d.oh, d.tw, d.th)
		if err != nil {
			t.Fatalf("PlanCrop(%d,%d,%d,%d): %v", d.ow, d.oh, d.tw, d.th, err)
		}
		if plan.ResizeWidth < d.tw || plan.ResizeHeight < d.th {
			t.Errorf("%+v: resize %dx%d does not cover %dx%d",
				d, plan.ResizeWidth, plan.ResizeHeight, d.tw, d.th)
		}
		if plan.CropLeft+plan.CropWidth > plan.ResizeWidth {
			t.Errorf("%+v: crop extends past resize width", d)
		}
		if plan.CropTop+plan.CropHeight > plan.ResizeHeight {
			t.Errorf("%+v: crop extends past resize height", d)
		}
		if plan.CropLeft < 0 || plan.CropTop < 0 {
			t.Errorf("%+v: negative crop origin (%d,%d)", d, plan.CropLeft, plan.CropTop)
		}
	}
}

func TestPlanCropInvalidDimensions(t *testing.T) {
	tests := []struct {
		name                 string
		ow, oh, tw, th int
	}{
		{"zero source width", 0, 100, 100, 100},
		{"negative source height", 100, -1, 100, 100},
		{"zero target width", 100, 100, 0, 100},
		{"zero target height", 100, 100, 100, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PlanCrop(tt.ow, tt.oh, tt.tw, tt.th)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("got %v, want ErrInvalidArgument", err)
			}
		})
	}
}
