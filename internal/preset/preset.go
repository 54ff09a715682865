// Package preset records the built-in launch configurations, one per
// training run used in the experiments. Each is an independent, static
// instance of the same contract: a fixed flag list handed to the trainer as
// authored, in order. Values are frozen here; anything the caller wants to
// change rides in as passthrough arguments.
package preset

import "github.com/vk/vqalaunch/internal/runcfg"

// All returns the built-in launch configurations. The slice is rebuilt on
// every call so callers can mutate their copy freely.
func All() []*runcfg.Config {
	return []*runcfg.Config{
		eeCLEVR(),
		macCLEVR(),
		filmCLEVR(),
		nmnSHAPES(),
		macSHAPES(),
		filmAttentionSHAPES(),
		eeFlatQA(),
		nmnFlatQA(),
		macFlatQA(),
		filmFlatQA(),
		filmAttentionFlatQA(),
	}
}

func eeCLEVR() *runcfg.Config {
	return &runcfg.Config{
		Name:        "ee_clevr",
		Description: "End-to-end CNN+LSTM baseline on CLEVR pixels",
		Dataset:     "clevr",
		Flags: []runcfg.Flag{
			{Name: "model_type", Value: "EE"},
			{Name: "feature_dim", Value: "3,64,64", Joined: true},
			{Name: "num_iterations", Value: "50000", Joined: true},
			{Name: "optimizer", Value: "Adam"},
			{Name: "learning_rate", Value: "1e-4"},
			{Name: "batch_size", Value: "128"},
			{Name: "weight_decay", Value: "1e-5"},
			{Name: "checkpoint_every", Value: "1000"},
			{Name: "record_loss_every", Value: "100"},
			{Name: "num_val_samples", Value: "10000"},
			{Name: "module_stem_num_layers", Value: "6"},
			{Name: "module_stem_subsample_layers", Value: "1,3", Joined: true},
			{Name: "module_dim", Value: "128"},
			{Name: "module_batchnorm", Value: "1"},
			{Name: "classifier_fc_dims", Value: "1024"},
			{Name: "classifier_batchnorm", Value: "1"},
			{Name: "use_coords", Value: "1"},
			{Name: "rnn_wordvec_dim", Value: "300"},
			{Name: "rnn_hidden_dim", Value: "256"},
			{Name: "rnn_num_layers", Value: "2"},
		},
	}
}

func macCLEVR() *runcfg.Config {
	return &runcfg.Config{
		Name:        "mac_clevr",
		Description: "MAC recurrent reasoning on CLEVR",
		Dataset:     "clevr",
		Flags: []runcfg.Flag{
			{Name: "model_type", Value: "MAC"},
			{Name: "feature_dim", Value: "3,64,64", Joined: true},
			{Name: "num_iterations", Value: "100000"},
			{Name: "optimizer", Value: "Adam"},
			{Name: "learning_rate", Value: "1e-4"},
			{Name: "batch_size", Value: "64"},
			{Name: "weight_decay", Value: "0"},
			{Name: "checkpoint_every", Value: "2000"},
			{Name: "record_loss_every", Value: "100"},
			{Name: "num_val_samples", Value: "10000"},
			{Name: "num_modules", Value: "12"},
			{Name: "mac_use_self_attention", Value: "1"},
			{Name: "mac_use_memory_gate", Value: "1"},
			{Name: "mac_sharing_params_patterns", Value: "0,0", Joined: true},
			{Name: "module_stem_num_layers", Value: "6"},
			{Name: "module_stem_subsample_layers", Value: "1,3", Joined: true},
			{Name: "module_dim", Value: "512"},
			{Name: "use_coords", Value: "1"},
			{Name: "rnn_wordvec_dim", Value: "300"},
			{Name: "rnn_hidden_dim", Value: "512"},
			{Name: "rnn_num_layers", Value: "1"},
			{Name: "classifier_fc_dims", Value: "1024"},
			{Name: "classifier_batchnorm", Value: "1"},
		},
	}
}

func filmCLEVR() *runcfg.Config {
	return &runcfg.Config{
		Name:        "film_clevr",
		Description: "FiLM conditioning on CLEVR",
		Dataset:     "clevr",
		Flags: []runcfg.Flag{
			{Name: "model_type", Value: "FiLM"},
			{Name: "feature_dim", Value: "3,64,64", Joined: true},
			{Name: "num_iterations", Value: "100000"},
			{Name: "optimizer", Value: "Adam"},
			{Name: "learning_rate", Value: "3e-4"},
			{Name: "batch_size", Value: "64"},
			{Name: "weight_decay", Value: "1e-5"},
			{Name: "checkpoint_every", Value: "2000"},
			{Name: "record_loss_every", Value: "100"},
			{Name: "num_val_samples", Value: "10000"},
			{Name: "num_modules", Value: "4"},
			{Name: "module_stem_num_layers", Value: "6"},
			{Name: "module_stem_subsample_layers", Value: "1,3", Joined: true},
			{Name: "module_dim", Value: "128"},
			{Name: "module_batchnorm", Value: "1"},
			{Name: "use_coords", Value: "1"},
			{Name: "rnn_wordvec_dim", Value: "200"},
			{Name: "rnn_hidden_dim", Value: "4096"},
			{Name: "rnn_num_layers", Value: "1"},
			{Name: "classifier_fc_dims", Value: "1024"},
			{Name: "classifier_batchnorm", Value: "1"},
		},
	}
}

func nmnSHAPES() *runcfg.Config {
	return &runcfg.Config{
		Name:        "nmn_shapes",
		Description: "Heterogeneous neural module network on SHAPES",
		Dataset:     "shapes",
		Flags: []runcfg.Flag{
			{Name: "model_type", Value: "NMN"},
			{Name: "feature_dim", Value: "3,30,30", Joined: true},
			{Name: "num_iterations", Value: "30000"},
			{Name: "optimizer", Value: "Adam"},
			{Name: "learning_rate", Value: "1e-4"},
			{Name: "batch_size", Value: "64"},
			{Name: "weight_decay", Value: "0"},
			{Name: "checkpoint_every", Value: "500"},
			{Name: "record_loss_every", Value: "10"},
			{Name: "num_val_samples", Value: "1000"},
			{Name: "module_stem_num_layers", Value: "2"},
			{Name: "module_dim", Value: "64"},
			{Name: "module_batchnorm", Value: "0"},
			{Name: "use_coords", Value: "1"},
			{Name: "rnn_wordvec_dim", Value: "64"},
			{Name: "rnn_hidden_dim", Value: "128"},
			{Name: "rnn_num_layers", Value: "1"},
			{Name: "classifier_fc_dims", Value: "512"},
			{Name: "classifier_batchnorm", Value: "0"},
		},
	}
}

func macSHAPES() *runcfg.Config {
	return &runcfg.Config{
		Name:        "mac_shapes",
		Description: "MAC recurrent reasoning on SHAPES",
		Dataset:     "shapes",
		Flags: []runcfg.Flag{
			{Name: "model_type", Value: "MAC"},
			{Name: "feature_dim", Value: "3,30,30", Joined: true},
			{Name: "num_iterations", Value: "30000"},
			{Name: "optimizer", Value: "Adam"},
			{Name: "learning_rate", Value: "1e-4"},
			{Name: "batch_size", Value: "64"},
			{Name: "weight_decay", Value: "0"},
			{Name: "checkpoint_every", Value: "500"},
			{Name: "record_loss_every", Value: "10"},
			{Name: "num_val_samples", Value: "1000"},
			{Name: "num_modules", Value: "6"},
			{Name: "mac_use_self_attention", Value: "1"},
			{Name: "mac_use_memory_gate", Value: "0"},
			{Name: "mac_sharing_params_patterns", Value: "0,0", Joined: true},
			{Name: "module_stem_num_layers", Value: "2"},
			{Name: "module_dim", Value: "128"},
			{Name: "use_coords", Value: "1"},
			{Name: "rnn_wordvec_dim", Value: "64"},
			{Name: "rnn_hidden_dim", Value: "128"},
			{Name: "rnn_num_layers", Value: "1"},
			{Name: "classifier_fc_dims", Value: "512"},
			{Name: "classifier_batchnorm", Value: "0"},
		},
	}
}

func filmAttentionSHAPES() *runcfg.Config {
	return &runcfg.Config{
		Name:        "film_attention_shapes",
		Description: "FiLM with spatial attention on SHAPES",
		Dataset:     "shapes",
		Flags: []runcfg.Flag{
			{Name: "model_type", Value: "FiLM-attention"},
			{Name: "feature_dim", Value: "3,30,30", Joined: true},
			{Name: "num_iterations", Value: "30000"},
			{Name: "optimizer", Value: "Adam"},
			{Name: "learning_rate", Value: "3e-4"},
			{Name: "batch_size", Value: "64"},
			{Name: "weight_decay", Value: "0"},
			{Name: "checkpoint_every", Value: "500"},
			{Name: "record_loss_every", Value: "10"},
			{Name: "num_val_samples", Value: "1000"},
			{Name: "num_modules", Value: "2"},
			{Name: "module_stem_num_layers", Value: "2"},
			{Name: "module_dim", Value: "64"},
			{Name: "module_batchnorm", Value: "1"},
			{Name: "use_coords", Value: "1"},
			{Name: "rnn_wordvec_dim", Value: "64"},
			{Name: "rnn_hidden_dim", Value: "256"},
			{Name: "rnn_num_layers", Value: "1"},
			{Name: "classifier_fc_dims", Value: "512"},
			{Name: "classifier_batchnorm", Value: "1"},
		},
	}
}

func eeFlatQA() *runcfg.Config {
	return &runcfg.Config{
		Name:        "ee_flatqa",
		Description: "End-to-end CNN+LSTM baseline on FlatQA",
		Dataset:     "flatqa",
		Flags: []runcfg.Flag{
			{Name: "model_type", Value: "EE"},
			{Name: "feature_dim", Value: "3,64,64", Joined: true},
			{Name: "num_iterations", Value: "20000"},
			{Name: "optimizer", Value: "Adam"},
			{Name: "learning_rate", Value: "1e-4"},
			{Name: "batch_size", Value: "64"},
			{Name: "weight_decay", Value: "0"},
			{Name: "checkpoint_every", Value: "500"},
			{Name: "record_loss_every", Value: "10"},
			{Name: "num_val_samples", Value: "1000"},
			{Name: "module_stem_num_layers", Value: "6"},
			{Name: "module_stem_subsample_layers", Value: "1,3", Joined: true},
			{Name: "module_dim", Value: "64"},
			{Name: "module_batchnorm", Value: "1"},
			{Name: "use_coords", Value: "1"},
			{Name: "rnn_wordvec_dim", Value: "64"},
			{Name: "rnn_hidden_dim", Value: "128"},
			{Name: "rnn_num_layers", Value: "1"},
			{Name: "classifier_fc_dims", Value: "512"},
			{Name: "classifier_batchnorm", Value: "1"},
		},
	}
}

func nmnFlatQA() *runcfg.Config {
	return &runcfg.Config{
		Name:        "nmn_flatqa",
		Description: "Heterogeneous neural module network on FlatQA",
		Dataset:     "flatqa",
		Flags: []runcfg.Flag{
			{Name: "model_type", Value: "NMN"},
			{Name: "feature_dim", Value: "3,64,64", Joined: true},
			{Name: "num_iterations", Value: "20000"},
			{Name: "optimizer", Value: "Adam"},
			{Name: "learning_rate", Value: "1e-4"},
			{Name: "batch_size", Value: "64"},
			{Name: "weight_decay", Value: "0"},
			{Name: "checkpoint_every", Value: "500"},
			{Name: "record_loss_every", Value: "10"},
			{Name: "num_val_samples", Value: "1000"},
			{Name: "module_stem_num_layers", Value: "6"},
			{Name: "module_stem_subsample_layers", Value: "1,3", Joined: true},
			{Name: "module_dim", Value: "64"},
			{Name: "module_batchnorm", Value: "0"},
			{Name: "use_coords", Value: "1"},
			{Name: "rnn_wordvec_dim", Value: "64"},
			{Name: "rnn_hidden_dim", Value: "128"},
			{Name: "rnn_num_layers", Value: "1"},
			{Name: "classifier_fc_dims", Value: "512"},
			{Name: "classifier_batchnorm", Value: "0"},
		},
	}
}

func macFlatQA() *runcfg.Config {
	return &runcfg.Config{
		Name:        "mac_flatqa",
		Description: "MAC recurrent reasoning on FlatQA",
		Dataset:     "flatqa",
		Flags: []runcfg.Flag{
			{Name: "model_type", Value: "MAC"},
			{Name: "feature_dim", Value: "3,64,64", Joined: true},
			{Name: "num_iterations", Value: "20000"},
			{Name: "optimizer", Value: "Adam"},
			{Name: "learning_rate", Value: "1e-4"},
			{Name: "batch_size", Value: "64"},
			{Name: "weight_decay", Value: "0"},
			{Name: "checkpoint_every", Value: "500"},
			{Name: "record_loss_every", Value: "10"},
			{Name: "num_val_samples", Value: "1000"},
			{Name: "num_modules", Value: "12"},
			{Name: "mac_use_self_attention", Value: "1"},
			{Name: "mac_use_memory_gate", Value: "1"},
			{Name: "mac_sharing_params_patterns", Value: "1,1", Joined: true},
			{Name: "module_stem_num_layers", Value: "6"},
			{Name: "module_stem_subsample_layers", Value: "1,3", Joined: true},
			{Name: "module_dim", Value: "128"},
			{Name: "use_coords", Value: "1"},
			{Name: "rnn_wordvec_dim", Value: "64"},
			{Name: "rnn_hidden_dim", Value: "128"},
			{Name: "rnn_num_layers", Value: "1"},
			{Name: "classifier_fc_dims", Value: "512"},
			{Name: "classifier_batchnorm", Value: "1"},
		},
	}
}

func filmFlatQA() *runcfg.Config {
	return &runcfg.Config{
		Name:        "film_flatqa",
		Description: "FiLM conditioning on FlatQA",
		Dataset:     "flatqa",
		Flags: []runcfg.Flag{
			{Name: "model_type", Value: "FiLM"},
			{Name: "feature_dim", Value: "3,64,64", Joined: true},
			{Name: "num_iterations", Value: "20000"},
			{Name: "optimizer", Value: "Adam"},
			{Name: "learning_rate", Value: "3e-4"},
			{Name: "batch_size", Value: "64"},
			{Name: "weight_decay", Value: "0"},
			{Name: "checkpoint_every", Value: "500"},
			{Name: "record_loss_every", Value: "10"},
			{Name: "num_val_samples", Value: "1000"},
			{Name: "num_modules", Value: "4"},
			{Name: "module_stem_num_layers", Value: "6"},
			{Name: "module_stem_subsample_layers", Value: "1,3", Joined: true},
			{Name: "module_dim", Value: "128"},
			{Name: "module_batchnorm", Value: "1"},
			{Name: "use_coords", Value: "1"},
			{Name: "rnn_wordvec_dim", Value: "64"},
			{Name: "rnn_hidden_dim", Value: "1024"},
			{Name: "rnn_num_layers", Value: "1"},
			{Name: "classifier_fc_dims", Value: "512"},
			{Name: "classifier_batchnorm", Value: "1"},
		},
	}
}

func filmAttentionFlatQA() *runcfg.Config {
	return &runcfg.Config{
		Name:        "film_attention_flatqa",
		Description: "FiLM with spatial attention on FlatQA",
		Dataset:     "flatqa",
		Flags: []runcfg.Flag{
			{Name: "model_type", Value: "FiLM-attention"},
			{Name: "feature_dim", Value: "3,64,64", Joined: true},
			{Name: "num_iterations", Value: "20000"},
			{Name: "optimizer", Value: "Adam"},
			{Name: "learning_rate", Value: "3e-4"},
			{Name: "batch_size", Value: "64"},
			{Name: "weight_decay", Value: "0"},
			{Name: "checkpoint_every", Value: "500"},
			{Name: "record_loss_every", Value: "10"},
			{Name: "num_val_samples", Value: "1000"},
			{Name: "num_modules", Value: "2"},
			{Name: "module_stem_num_layers", Value: "6"},
			{Name: "module_stem_subsample_layers", Value: "1,3", Joined: true},
			{Name: "module_dim", Value: "128"},
			{Name: "module_batchnorm", Value: "1"},
			{Name: "use_coords", Value: "1"},
			{Name: "rnn_wordvec_dim", Value: "64"},
			{Name: "rnn_hidden_dim", Value: "256"},
			{Name: "rnn_num_layers", Value: "1"},
			{Name: "classifier_fc_dims", Value: "512"},
			{Name: "classifier_batchnorm", Value: "1"},
		},
	}
}
