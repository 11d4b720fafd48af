package calorie_test

import (
	"testing"

	"github.com/okian/caltrack/internal/domain/calorie"
	"github.com/smartystreets/goconvey/convey"
)

func TestClassify(t *testing.T) {
	convey.Convey("Given net calorie values", t, func() {
		convey.Convey("Then positive should be a surplus", func() {
			convey.So(calorie.Classify(1500), convey.ShouldEqual, calorie.Surplus)
			convey.So(calorie.Classify(0.5), convey.ShouldEqual, calorie.Surplus)
		})

		convey.Convey("And negative should be a deficit", func() {
			convey.So(calorie.Classify(-1), convey.ShouldEqual, calorie.Deficit)
		})

		convey.Convey("And zero should be maintenance", func() {
			convey.So(calorie.Classify(0), convey.ShouldEqual, calorie.Maintenance)
		})
	})
}

func TestBalanceDisplay(t *testing.T) {
	convey.Convey("Given each balance", t, func() {
		convey.Convey("Then descriptions should match the page copy", func() {
			convey.So(calorie.Surplus.Description(), convey.ShouldEqual, "Caloric surplus - may lead to weight gain")
			convey.So(calorie.Deficit.Description(), convey.ShouldEqual, "Caloric deficit - may lead to weight loss")
			convey.So(calorie.Maintenance.Description(), convey.ShouldEqual, "Balanced calories - maintenance mode")
			convey.So(calorie.Balance("").Description(), convey.ShouldEqual, "Enter your data to see results")
		})

		convey.Convey("And tones should follow the sign", func() {
			convey.So(calorie.Surplus.Tone(), convey.ShouldEqual, calorie.ToneRed)
			convey.So(calorie.Deficit.Tone(), convey.ShouldEqual, calorie.ToneEmerald)
			convey.So(calorie.Maintenance.Tone(), convey.ShouldEqual, calorie.ToneAmber)
		})

		convey.Convey("And String should return the label", func() {
			convey.So(calorie.Deficit.String(), convey.ShouldEqual, "deficit")
		})
	})
}

func TestBreakdown(t *testing.T) {
	convey.Convey("Given results with different burn sources", t, func() {
		convey.Convey("When both exercise and steps are present", func() {
			r := calorie.Result{ExerciseCalories: 1300, StepsCalories: 200}
			convey.So(r.Breakdown(), convey.ShouldEqual, "Exercise: 1,300 • Steps: 200")
		})

		convey.Convey("When only exercise is present", func() {
			r := calorie.Result{ExerciseCalories: 300}
			convey.So(r.Breakdown(), convey.ShouldEqual, "Exercise: 300")
		})

		convey.Convey("When only steps are present", func() {
			r := calorie.Result{StepsCalories: 1000}
			convey.So(r.Breakdown(), convey.ShouldEqual, "Steps: 1,000")
		})

		convey.Convey("When nothing was burned", func() {
			r := calorie.Result{}
			convey.So(r.Breakdown(), convey.ShouldEqual, "No exercise or steps recorded")
		})
	})
}

func TestFormatCalories(t *testing.T) {
	convey.Convey("Given calorie amounts", t, func() {
		convey.So(calorie.FormatCalories(0), convey.ShouldEqual, "0")
		convey.So(calorie.FormatCalories(1500), convey.ShouldEqual, "1,500")
		convey.So(calorie.FormatCalories(-2500), convey.ShouldEqual, "-2,500")
		convey.So(calorie.FormatCalories(1234567.5), convey.ShouldEqual, "1,234,567.5")

		convey.Convey("Then fractional results should be rounded to three digits", func() {
			res, err := calorie.Compute(calorie.Input{
				CaloriesIn:     calorie.Amount(0.3),
				CaloriesBurned: calorie.Amount(0.1),
			})
			convey.So(err, convey.ShouldBeNil)
			convey.So(calorie.FormatCalories(res.NetCalories), convey.ShouldEqual, "0.2")
			convey.So(calorie.FormatCalories(1.23456), convey.ShouldEqual, "1.235")
			convey.So(calorie.FormatCalories(2500.0004), convey.ShouldEqual, "2,500")
			convey.So(calorie.FormatCalories(-0.0001), convey.ShouldEqual, "0")
		})
	})
}
