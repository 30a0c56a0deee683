package command

import (
	"path"

	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
)

type FileManager struct {
	runner  Runner
	command OSCommand
}

func NewFileManager(runner Runner) *FileManager {
	return &FileManager{
		runner:  runner,
		command: runner.OsCommand(),
	}
}

// CreateDirectory if it does not exist
func (fm *FileManager) CreateDirectory(name string, remotePath pulumi.StringInput, useSudo bool, opts ...pulumi.ResourceOption) (Command, error) {
	return fm.command.CreateDirectory(fm.runner, name, remotePath, useSudo, opts...)
}

func (fm *FileManager) TempDirectory(resourceName string, opts ...pulumi.ResourceOption) (Command, string, error) {
	tempDir := path.Join(fm.command.GetTemporaryDirectory(), resourceName)
	folderCmd, err := fm.CreateDirectory("create-temporary-folder-"+resourceName, pulumi.String(tempDir), false, opts...)
	return folderCmd, tempDir, err
}

func (fm *FileManager) HomeDirectory(folderName string, opts ...pulumi.ResourceOption) (Command, string, error) {
	homeDir := path.Join(fm.command.GetHomeDirectory(), folderName)
	folderCmd, err := fm.CreateDirectory("create-home-folder-"+folderName, pulumi.String(homeDir), false, opts...)
	return folderCmd, homeDir, err
}

func (fm *FileManager) CopyFile(name string, localPath, remotePath pulumi.StringInput, opts ...pulumi.ResourceOption) (pulumi.Resource, error) {
	return fm.runner.NewCopyFile(name, localPath, remotePath, opts...)
}

func (fm *FileManager) CopyInlineFile(fileContent pulumi.StringInput, remotePath string, useSudo bool, opts ...pulumi.ResourceOption) (Command, error) {
	return fm.command.CopyInlineFile(fm.runner, fileContent, remotePath, useSudo, opts...)
}
