// Package accelerator builds the augmentation suffix from the versions of the
// installed CUDA toolkit and tensor framework.
//
// The default RuntimeProbe asks the Python interpreter for torch.__version__
// and torch.version.cuda. Other probes can be plugged into the resolver.
package accelerator
