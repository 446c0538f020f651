package services

import "fmt"

// Serving dependencies baked into every base image. The versions are pinned
// to match the serving entry point in the build template.
const baseImageDockerfile = `FROM python:%s

COPY %s/requirements.txt /tmp/
RUN pip install -r /tmp/requirements.txt \
    && pip install uvicorn==0.18.2 protobuf==3.20.* fastapi==0.80.* \
    && mkdir -p /model

WORKDIR /model
EXPOSE 8080

ENTRYPOINT gunicorn main:app --workers 2 --worker-class uvicorn.workers.UvicornWorker --bind 0.0.0.0:8080 --timeout 120
`

const overlayDockerfile = `FROM %s

COPY %s/ /model/
RUN python setup.py
`

// renderBaseDockerfile produces the reusable base layer build file: the
// versioned Python runtime plus the model's dependency manifest and the
// pinned serving stack.
func renderBaseDockerfile(pythonVersion, modelDirName string) string {
	return fmt.Sprintf(baseImageDockerfile, pythonVersion, modelDirName)
}

// renderOverlayDockerfile produces the model-specific layer on top of a
// built base image.
func renderOverlayDockerfile(baseImage, modelDirName string) string {
	return fmt.Sprintf(overlayDockerfile, baseImage, modelDirName)
}
