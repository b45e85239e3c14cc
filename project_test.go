package buildassert

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/buildassert/buildtest"
	"github.com/roach88/buildassert/host"
)

type javaExtension struct {
	Release int
}

type compileTask struct {
	*buildtest.Task
}

func sampleProject(t *testing.T) *buildtest.Project {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.gradle"), nil, 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src", "main"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "build", "libs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "build", "libs", "app.jar"), nil, 0o644))

	return buildtest.NewProject("app",
		buildtest.WithDir(dir),
		buildtest.WithGroup("com.example"),
		buildtest.WithVersion("1.0"),
		buildtest.WithDescription("sample"),
	).
		ApplyPlugin("java", "jacoco").
		AddExtension("java", &javaExtension{Release: 21}).
		AddConfiguration(buildtest.NewConfiguration("implementation")).
		AddTask(buildtest.NewTask("clean")).
		AddTask(compileTask{buildtest.NewTask("compileJava")}).
		AddTask(buildtest.NewReportingTask("test").AddReport("html", "build/reports/tests")).
		SetProperty("answer", 42).
		SetProperty("unset", nil)
}

func TestProject_Fields(t *testing.T) {
	project := sampleProject(t)

	expectPass(t, func(rt TestingT) {
		ThatProject(rt, project).
			HasName("app").
			HasPath(":").
			HasGroup("com.example").
			HasVersion("1.0").
			HasDescription("sample")
	})

	msg := expectFailure(t, func(rt TestingT) {
		ThatProject(rt, project).HasVersion("2.0")
	})
	assert.Equal(t, "Expected project version to be '2.0' but was '1.0'", msg)
}

func TestProject_NamedPresence(t *testing.T) {
	project := sampleProject(t)

	expectPass(t, func(rt TestingT) {
		ThatProject(rt, project).
			HasPlugin("java", "jacoco").
			DoesNotHavePlugin("kotlin").
			HasExtension("java").
			DoesNotHaveExtension("android").
			HasConfiguration("implementation").
			DoesNotHaveConfiguration("api").
			HasTask("clean", "compileJava", "test").
			DoesNotHaveTask("jar")
	})

	tests := []struct {
		name string
		fn   func(TestingT)
		want string
	}{
		{"plugin", func(rt TestingT) { ThatProject(rt, project).HasPlugin("kotlin") }, "Project 'app' does not contain the plugin 'kotlin'"},
		{"no plugin", func(rt TestingT) { ThatProject(rt, project).DoesNotHavePlugin("java") }, "Project 'app' should not contain the plugin 'java'"},
		{"extension", func(rt TestingT) { ThatProject(rt, project).HasExtension("android") }, "Project 'app' does not contain the extension 'android'"},
		{"no extension", func(rt TestingT) { ThatProject(rt, project).DoesNotHaveExtension("java") }, "Project 'app' should not contain the extension 'java'"},
		{"configuration", func(rt TestingT) { ThatProject(rt, project).HasConfiguration("api") }, "Project 'app' does not contain the configuration 'api'"},
		{"no configuration", func(rt TestingT) { ThatProject(rt, project).DoesNotHaveConfiguration("implementation") }, "Project 'app' should not contain the configuration 'implementation'"},
		{"task", func(rt TestingT) { ThatProject(rt, project).HasTask("jar") }, "Project 'app' does not contain the task 'jar'"},
		{"no task", func(rt TestingT) { ThatProject(rt, project).DoesNotHaveTask("clean") }, "Project 'app' should not contain the task 'clean'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, expectFailure(t, tt.fn))
		})
	}
}

func TestProject_BatchStopsAtFirstMissingName(t *testing.T) {
	project := buildtest.NewProject("app").AddTask(buildtest.NewTask("a"))

	rt := &recordingT{}
	rt.run(func(rt TestingT) {
		ThatProject(rt, project).HasTask("a", "b", "c")
	})

	require.True(t, rt.failed)
	assert.Equal(t, []string{"Project 'app' does not contain the task 'b'"}, rt.messages)
}

func TestProject_TypedLookups(t *testing.T) {
	project := sampleProject(t)

	expectPass(t, func(rt TestingT) {
		ThatProject(rt, project).
			HasExtensionWithType("java", reflect.TypeFor[*javaExtension]()).
			HasExtensionOfType(reflect.TypeFor[*javaExtension]()).
			HasTaskWithType("compileJava", reflect.TypeFor[compileTask]()).
			HasTaskWithType("clean", reflect.TypeFor[host.Task]()).
			HasTaskWithReports("test")
	})

	tests := []struct {
		name string
		fn   func(TestingT)
		want string
	}{
		{
			"extension type",
			func(rt TestingT) { ThatProject(rt, project).HasExtensionWithType("java", reflect.TypeFor[string]()) },
			"Expected extension 'java' to be an instance of 'string' but is '*github.com/roach88/buildassert.javaExtension'",
		},
		{
			"missing typed extension",
			func(rt TestingT) { ThatProject(rt, project).HasExtensionWithType("kotlin", reflect.TypeFor[string]()) },
			"Project 'app' does not contain the extension 'kotlin'",
		},
		{
			"extension of type",
			func(rt TestingT) { ThatProject(rt, project).HasExtensionOfType(reflect.TypeFor[string]()) },
			"Project 'app' does not contain an extension of type 'string'",
		},
		{
			"task type",
			func(rt TestingT) { ThatProject(rt, project).HasTaskWithType("clean", reflect.TypeFor[compileTask]()) },
			"Expected task 'clean' to be an instance of 'github.com/roach88/buildassert.compileTask' but is '*github.com/roach88/buildassert/buildtest.Task'",
		},
		{
			"reports",
			func(rt TestingT) { ThatProject(rt, project).HasTaskWithReports("clean") },
			"Expected task 'clean' to implement 'Reporting' but does not",
		},
		{
			"reports on missing task",
			func(rt TestingT) { ThatProject(rt, project).HasTaskWithReports("jar") },
			"Project 'app' does not contain the task 'jar'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, expectFailure(t, tt.fn))
		})
	}

	usage := expectUsage(t, func(rt TestingT) {
		ThatProject(rt, project).HasTaskWithType("clean", nil)
	})
	assert.Equal(t, "The expected type must not be <nil>.", usage.Message)
}

func TestProject_Satisfying(t *testing.T) {
	project := sampleProject(t)
	var seen []string

	expectPass(t, func(rt TestingT) {
		ThatProject(rt, project).
			HasTaskSatisfying("clean", func(task host.Task) { seen = append(seen, task.Path()) }).
			HasConfigurationSatisfying("implementation", func(c host.Configuration) { seen = append(seen, c.Name()) }).
			HasExtensionSatisfying("java", func(ext any) {
				assert.Equal(t, 21, ext.(*javaExtension).Release)
				seen = append(seen, "java")
			})
	})
	assert.Equal(t, []string{":clean", "implementation", "java"}, seen)

	msg := expectFailure(t, func(rt TestingT) {
		ThatProject(rt, project).HasTaskSatisfying("jar", func(host.Task) { t.Fatal("must not be called") })
	})
	assert.Equal(t, "Project 'app' does not contain the task 'jar'", msg)
}

func TestProject_NarrowsToTaskAndConfiguration(t *testing.T) {
	project := sampleProject(t)

	expectPass(t, func(rt TestingT) {
		ThatProject(rt, project).Task("compileJava").HasPath(":compileJava").IsEnabled()
		ThatProject(rt, project).Configuration("implementation").IsTransitive().IsEmpty()
	})
}

func TestProject_Files(t *testing.T) {
	project := sampleProject(t)

	expectPass(t, func(rt TestingT) {
		ThatProject(rt, project).
			HasProjectFile("settings.gradle").
			HasProjectDirectory("src/main").
			HasBuildFile("libs/app.jar").
			HasBuildDirectory("libs")
	})

	want := "Expecting path '" + filepath.Join(project.ProjectDir().Path(), "build.gradle") + "' to be an existing file"
	msg := expectFailure(t, func(rt TestingT) {
		ThatProject(rt, project).HasProjectFile("build.gradle")
	})
	assert.Equal(t, want, msg)

	want = "Expecting path '" + filepath.Join(project.ProjectDir().Path(), "build", "app.jar") + "' to be an existing directory"
	msg = expectFailure(t, func(rt TestingT) {
		ThatProject(rt, project).HasBuildDirectory("app.jar")
	})
	assert.Equal(t, want, msg)
}

func TestProject_Properties(t *testing.T) {
	project := sampleProject(t)

	expectPass(t, func(rt TestingT) {
		ThatProject(rt, project).
			HasProperty("answer").
			HasProperty("version").
			DoesNotHaveProperty("missing").
			HasPropertyValue("answer", 42).
			HasPropertyValue("group", "com.example").
			DoesNotHavePropertyValue("answer", 41).
			DoesNotHavePropertyValue("missing", 1)
		ThatProject(rt, project).Property("answer").IsEqualTo(42)
	})

	tests := []struct {
		name string
		fn   func(TestingT)
		want string
	}{
		{"has", func(rt TestingT) { ThatProject(rt, project).HasProperty("missing") }, "Project 'app' does not contain a property named 'missing'"},
		{"does not have", func(rt TestingT) { ThatProject(rt, project).DoesNotHaveProperty("answer") }, "Project 'app' should not contain a property named 'answer'"},
		{"value", func(rt TestingT) { ThatProject(rt, project).HasPropertyValue("answer", 41) }, "Project 'app' property 'answer' expected value '41' but was '42'"},
		{"nil value", func(rt TestingT) { ThatProject(rt, project).HasPropertyValue("unset", "x") }, "Project 'app' property 'unset' expected value 'x' but was 'nil'"},
		{"not value", func(rt TestingT) { ThatProject(rt, project).DoesNotHavePropertyValue("answer", 42) }, "Project 'app' property 'answer' should not equal '42'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, expectFailure(t, tt.fn))
		})
	}

	usage := expectUsage(t, func(rt TestingT) {
		ThatProject(rt, project).HasPropertyValue("answer", nil)
	})
	assert.Equal(t, "The expected value must not be <nil>.", usage.Message)
}

func TestProject_Nil(t *testing.T) {
	msg := expectFailure(t, func(rt TestingT) {
		ThatProject(rt, nil).HasTaskWithType("clean", reflect.TypeFor[host.Task]())
	})
	assert.Equal(t, "Expecting actual not to be nil", msg)
}
