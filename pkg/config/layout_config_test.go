package config

import (
	"testing"
)

// TestQuestionColumnFitsPhone 问题画面（图片 + 两行问题 + 按钮行）在 390x844 的手机上放得下
func TestQuestionColumnFitsPhone(t *testing.T) {
	buttonH := ButtonFontSize + 2*ButtonPaddingY
	column := ImageSize + ImageBottomGap + 2*QuestionFontSize*QuestionLineSpacing + ButtonsTopGap + buttonH

	if column > MobileEmulateHeight-2*ContentSidePadding {
		t.Errorf("question column height %.1f does not fit %d px phone", column, MobileEmulateHeight)
	}
	if ImageSize > MobileEmulateWidth-2*ContentSidePadding {
		t.Errorf("image size %.1f wider than phone content area", ImageSize)
	}
}

func TestButtonFeedbackScales(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		ok    bool
	}{
		{"悬停放大", ButtonHoverScale, ButtonHoverScale > 1},
		{"按下缩小", ButtonPressScale, ButtonPressScale > 0 && ButtonPressScale < 1},
		{"插值速度", ButtonScaleSpeed, ButtonScaleSpeed > 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.ok {
				t.Errorf("%s = %.2f out of range", tt.name, tt.value)
			}
		})
	}
}

// TestTransitionTimings 副标题必须在祝福语弹入开始之后出现，所有时长为正
func TestTransitionTimings(t *testing.T) {
	durations := map[string]float64{
		"QuestionExitDuration": QuestionExitDuration,
		"AnswerSpringDuration": AnswerSpringDuration,
		"SubtitleFadeDuration": SubtitleFadeDuration,
		"ImageBobPeriod":       ImageBobPeriod,
		"ImageWobblePeriod":    ImageWobblePeriod,
		"MessagePulsePeriod":   MessagePulsePeriod,
		"SparkleTwinklePeriod": SparkleTwinklePeriod,
		"ConfettiFallDuration": ConfettiFallDuration,
		"FloatRiseDuration":    FloatRiseDuration,
	}
	for name, d := range durations {
		if d <= 0 {
			t.Errorf("%s = %.2f, expected > 0", name, d)
		}
	}

	if SubtitleFadeDelay < MessageSpringDelay {
		t.Errorf("subtitle delay %.2f before message delay %.2f", SubtitleFadeDelay, MessageSpringDelay)
	}
}

func TestColorsOpaque(t *testing.T) {
	colors := map[string]uint8{
		"TextColor":      TextColor.A,
		"YesButtonColor": YesButtonColor.A,
		"NoButtonColor":  NoButtonColor.A,
		"SparkleColor":   SparkleColor.A,
		"HeartColor":     HeartColor.A,
		"BowColor":       BowColor.A,
	}
	for name, a := range colors {
		if a != 0xff {
			t.Errorf("%s alpha = %#x, expected 0xff", name, a)
		}
	}
}
