package renderer

import (
	"testing"
)

func TestNewUniformCache(t *testing.T) {
	cache := NewUniformCache(0)

	if cache == nil {
		t.Fatal("NewUniformCache returned nil")
	}

	if cache.locations == nil || cache.missing == nil {
		t.Error("maps should be initialized")
	}
}

func TestUniformCacheClear(t *testing.T) {
	cache := NewUniformCache(0)
	cache.locations[UniformModelView] = 5
	cache.missing[UniformNormals] = true

	cache.Clear()

	if len(cache.locations) != 0 || len(cache.missing) != 0 {
		t.Error("Clear should empty the cache")
	}
}

func TestUniformCacheIsSink(t *testing.T) {
	var sink UniformSink = NewUniformCache(0)

	if sink == nil {
		t.Error("UniformCache should satisfy UniformSink")
	}
}

func TestLightUniformNames(t *testing.T) {
	if got := LightUniform(3, LightFieldAperture); got != "uLights[3].aperture" {
		t.Errorf("Expected 'uLights[3].aperture', got '%s'", got)
	}
}
