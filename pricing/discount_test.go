package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pos-service/model"
)

func TestApplyNoDiscount(t *testing.T) {
	discounted, amount := Apply(10000, nil)
	assert.Equal(t, int64(10000), discounted)
	assert.Equal(t, int64(0), amount)
}

func TestApplyPercentage(t *testing.T) {
	tests := []struct {
		name       string
		price      int64
		value      int64
		discounted int64
		amount     int64
	}{
		{"ten percent", 10000, 10, 9000, 1000},
		{"floors the cut", 999, 10, 900, 99},
		{"zero percent", 10000, 0, 10000, 0},
		{"full discount", 10000, 100, 0, 10000},
		{"over 100 clamps to free", 10000, 150, 0, 10000},
		{"zero price", 0, 50, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			discounted, amount := Apply(tt.price, &model.Discount{Type: model.DiscountPercentage, Amount: tt.value})
			assert.Equal(t, tt.discounted, discounted)
			assert.Equal(t, tt.amount, amount)
		})
	}
}

func TestApplyFixed(t *testing.T) {
	tests := []struct {
		name       string
		price      int64
		value      int64
		discounted int64
		amount     int64
	}{
		{"under price", 10000, 3000, 7000, 3000},
		{"equal to price", 10000, 10000, 0, 10000},
		{"over price clamps", 10000, 15000, 0, 10000},
		{"zero value", 10000, 0, 10000, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			discounted, amount := Apply(tt.price, &model.Discount{Type: model.DiscountFixed, Amount: tt.value})
			assert.Equal(t, tt.discounted, discounted)
			assert.Equal(t, tt.amount, amount)
		})
	}
}

func TestApplyNeverNegative(t *testing.T) {
	for _, price := range []int64{0, 1, 99, 10000, 123457} {
		for _, value := range []int64{0, 1, 50, 100, 101, 100000, 1000000} {
			for _, typ := range []model.DiscountType{model.DiscountPercentage, model.DiscountFixed} {
				discounted, amount := Apply(price, &model.Discount{Type: typ, Amount: value})
				assert.GreaterOrEqual(t, discounted, int64(0))
				assert.LessOrEqual(t, discounted, price)
				// the two halves always rebuild the base price
				assert.Equal(t, price, discounted+amount)
			}
		}
	}
}

func TestApplyUnknownTypeMeansNoDiscount(t *testing.T) {
	discounted, amount := Apply(5000, &model.Discount{Type: "bogo", Amount: 50})
	assert.Equal(t, int64(5000), discounted)
	assert.Equal(t, int64(0), amount)
}

func TestApplyNegativeValueMeansNoDiscount(t *testing.T) {
	discounted, amount := Apply(5000, &model.Discount{Type: model.DiscountFixed, Amount: -100})
	assert.Equal(t, int64(5000), discounted)
	assert.Equal(t, int64(0), amount)
}
