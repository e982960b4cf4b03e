package renderer

import (
	"Phong3D/internal/logger"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
)

// =============================================================
//
//	Shaders
//
// =============================================================
type Shader struct {
	vertexSource   string
	fragmentSource string
	program        uint32
}

// Vertex attribute locations, matching the interleaved Mesh layout.
const (
	attribPosition = 0
	attribNormal   = 1
)

func InitShader() Shader {
	return Shader{
		vertexSource:   phongVertexShaderSource,
		fragmentSource: phongFragmentShaderSource,
	}
}

// Compile compiles and links the program. It must run on the thread that
// owns the GL context.
func (shader *Shader) Compile() error {
	vs, err := GenShader(shader.vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return err
	}
	fs, err := GenShader(shader.fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return err
	}
	program, err := GenShaderProgram(vs, fs)
	if err != nil {
		return err
	}
	shader.program = program
	return nil
}

func (shader *Shader) Use() {
	gl.UseProgram(shader.program)
}

func (shader *Shader) Program() uint32 {
	return shader.program
}

func (shader *Shader) Delete() {
	if shader.program != 0 {
		gl.DeleteProgram(shader.program)
		shader.program = 0
	}
}

func GenShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	cSources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, cSources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)

		logger.Log.Error("Failed to compile", zap.Uint32("shader type", shaderType), zap.String("log", log))
		return 0, fmt.Errorf("compile shader type %d: %s", shaderType, log)
	}
	return shader, nil
}

func GenShaderProgram(vertexShader, fragmentShader uint32) (uint32, error) {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.BindAttribLocation(program, attribPosition, gl.Str("vPosition\x00"))
	gl.BindAttribLocation(program, attribNormal, gl.Str("vNormal\x00"))
	gl.LinkProgram(program)

	gl.DetachShader(program, vertexShader)
	gl.DeleteShader(vertexShader)
	gl.DetachShader(program, fragmentShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)

		logger.Log.Error("Failed to link program", zap.String("log", log))
		return 0, fmt.Errorf("link program: %s", log)
	}
	logger.Log.Debug("Shader program linked", zap.Uint32("program", program))
	return program, nil
}

var phongVertexShaderSource = `#version 410 core

in vec3 vPosition;
in vec3 vNormal;

uniform mat4 mModelView;
uniform mat4 mNormals;
uniform mat4 mProjection;

out vec3 fNormal;   // view space
out vec3 fPosition; // view space

void main() {
    vec4 posC = mModelView * vec4(vPosition, 1.0);
    fPosition = posC.xyz;
    fNormal = (mNormals * vec4(vNormal, 0.0)).xyz;
    gl_Position = mProjection * posC;
}
` + "\x00"

// Light colors arrive on the 0-255 scale, material coefficients on 0-1.
// Light positions and axes are world space and moved to view space here.
var phongFragmentShaderSource = `#version 410 core

const int MAX_LIGHTS = ` + fmt.Sprint(MaxLights) + `;
const int LIGHT_POINT = 0;
const int LIGHT_DIRECTIONAL = 1;
const int LIGHT_SPOT = 2;

struct LightInfo {
    int type;
    int enabled;
    vec3 ambient;
    vec3 diffuse;
    vec3 specular;
    vec4 position;
    vec3 axis;
    float aperture; // radians
    float cutoff;   // < 0 disables falloff
};

struct MaterialInfo {
    vec3 Ka;
    vec3 Kd;
    vec3 Ks;
    float shininess;
};

uniform int uNLights;
uniform LightInfo uLights[MAX_LIGHTS];
uniform MaterialInfo uMaterial;
uniform mat4 mView;

in vec3 fNormal;
in vec3 fPosition;

out vec4 FragColor;

void main() {
    vec3 N = normalize(fNormal);
    vec3 V = normalize(-fPosition);
    mat3 viewNormals = mat3(transpose(inverse(mView)));
    vec3 color = vec3(0.0);

    for (int i = 0; i < MAX_LIGHTS; i++) {
        if (i == uNLights) break;
        if (uLights[i].enabled == 0) continue;

        vec3 L;
        if (uLights[i].position.w == 0.0) {
            L = normalize(viewNormals * uLights[i].position.xyz);
        } else {
            L = normalize((mView * uLights[i].position).xyz - fPosition);
        }

        float weight = 1.0;
        if (uLights[i].type == LIGHT_SPOT) {
            vec3 axis = normalize(viewNormals * uLights[i].axis);
            float cosAngle = dot(-L, axis);
            if (acos(clamp(cosAngle, -1.0, 1.0)) > uLights[i].aperture) {
                weight = 0.0;
            } else if (uLights[i].cutoff >= 0.0) {
                weight = pow(max(cosAngle, 0.0), uLights[i].cutoff);
            }
        }

        vec3 H = normalize(L + V);
        float diffuse = max(dot(L, N), 0.0);
        float specular = pow(max(dot(N, H), 0.0), uMaterial.shininess);
        if (dot(L, N) < 0.0) specular = 0.0;

        vec3 ambientC = uLights[i].ambient / 255.0 * uMaterial.Ka;
        vec3 diffuseC = uLights[i].diffuse / 255.0 * uMaterial.Kd * diffuse;
        vec3 specularC = uLights[i].specular / 255.0 * uMaterial.Ks * specular;

        color += ambientC + weight * (diffuseC + specularC);
    }

    FragColor = vec4(color, 1.0);
}
` + "\x00"
