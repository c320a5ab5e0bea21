package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyBiomeTable(t *testing.T) {
	cases := []struct {
		temp, precip float64
		want         Biome
	}{
		{25, 350, BiomeTropicalRainforest},
		{25, 100, BiomeTropicalSavanna},
		{25, 10, BiomeDesert},
		{10, 250, BiomeTemperateRainforest},
		{10, 150, BiomeTemperateDeciduous},
		{10, 50, BiomeTemperateGrassland},
		{10, 5, BiomeDesert},
		{0, 60, BiomeTaiga},
		{0, 10, BiomeDesert},
		{-10, 0, BiomeTundra},
		{-40, 0, BiomePolar},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ClassifyBiome(c.temp, c.precip), "temp=%v precip=%v", c.temp, c.precip)
	}
}

func TestWaterLevelForDistance(t *testing.T) {
	assert.True(t, WaterLevelForDistance(0) > 1e300)
	assert.Equal(t, 100.0, WaterLevelForDistance(1))
	assert.Equal(t, 50.0, WaterLevelForDistance(3))
	assert.Equal(t, 20.0, WaterLevelForDistance(5))
	assert.Equal(t, 5.0, WaterLevelForDistance(6))
}
