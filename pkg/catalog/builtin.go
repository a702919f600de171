package catalog

// Ledger prefixes of the built-in catalog.
const (
	PrefixGreenfield      = "greenfield"
	PrefixGeneric         = "generic"
	PrefixVSphere         = "vsphere"
	PrefixNSX             = "nsx"
	PrefixAriaLM          = "aria_lm"
	PrefixAriaOps         = "aria_ops"
	PrefixAriaAuto        = "aria_auto"
	PrefixAriaOpsNetworks = "aria_ops_networks"
	PrefixAriaOpsLogs     = "aria_ops_logs"
	PrefixVCFUpgrade      = "vcfUpgrade"
)

// Built-in path IDs.
const (
	PathGreenfield = "path1"
	PathBrownfield = "path2"
	PathVCFUpgrade = "path3"
)

func pass(text string) Result    { return Result{Text: text, Severity: SeverityPass} }
func caution(text string) Result { return Result{Text: text, Severity: SeverityCaution} }
func blocker(text string) Result { return Result{Text: text, Severity: SeverityBlocker} }

func yesNo(id, category, text string, yes, no Result) Question {
	return Question{
		ID:       id,
		Text:     text,
		Category: category,
		Kind:     KindBoolean,
		Options: []Option{
			{Value: AnswerYes, Result: yes},
			{Value: AnswerNo, Result: no},
		},
	}
}

const (
	canDeploy     = "You can Deploy VCF 9.0"
	canUpgrade    = "You can upgrade to VCF 9.0"
	cannotUpgrade = "You cannot upgrade to VCF 9.0"
	deployVCF     = "Deploy VCF"
	backupNo      = "It is highly recommended to validate your backup plan and software compatibility before starting the upgrade. -- Caution"
	firmwareQ     = "Have you verified that all server firmware and BIOS versions are compliant with the versions specified in the VCF 9.0 Hardware Compatibility List (HCL)?"
	firmwareYes   = "Firmware and BIOS levels are confirmed to be compatible."
	firmwareNo    = "You cannot proceed with the upgrade. All hardware firmware and BIOS must be updated to HCL-compliant versions first."
	backupQ       = "Have you established a post-upgrade backup plan and verified that your current backup solution is compatible with the new VCF 9.0 component versions?"
	backupYes     = "A post-upgrade backup strategy is in place."
	hclQ          = "Does Customer have supported hardware for VCF 9 based on HCL? Yes or No"
)

func builtinPaths() []Path {
	return []Path{greenfieldPath(), brownfieldPath(), vcfUpgradePath()}
}

func greenfieldPath() Path {
	return Path{
		ID:          PathGreenfield,
		Title:       "Path 1: Deploy New VCF 9 Environment (Greenfield)",
		Description: "Start fresh with a new VCF 9 deployment. Ideal for new projects, hardware refreshes, or when an in-place upgrade is too complex.",
		Customer: []Consideration{
			{Icon: "🛡️", Text: "Lowest Risk: This path is the safest as your current production environment remains untouched during the build phase."},
			{Icon: "💰", Text: "Highest Initial Cost: Requires capital expenditure for new hardware and running two environments in parallel during migration."},
			{Icon: "🧹", Text: "Clean Slate: Avoids carrying over legacy configuration issues or technical debt."},
		},
		Delivery: []DeliverySection{
			{Title: "Tools Involved", Icon: "🔧", Items: []string{"VCF Installer", "VMware HCX (Optional for migration)"}},
			{Title: "Design Options", Icon: "🗺️", Items: []string{"Appliance Model: Simple (lab) or HA (production)", "Fleet Topology: Single-Site or Multi-Site"}},
			{Title: "Key Implementation Activities", Icon: "✅", Items: []string{"Deploy VCF Installer & run automated deployment", "Build Workload Domains", "Deploy & configure HCX for migration", "Execute migration waves", "License & Decommission"}},
		},
		Base: []QuestionSet{{
			Prefix: PrefixGreenfield,
			Title:  "Greenfield Deployment Questionnaire",
			Questions: []Question{
				yesNo("gf-hcl", "Hardware", hclQ,
					pass(canDeploy),
					blocker("You cannot Deploy VCF 9.0")),
				{
					ID:       "gf-storage",
					Text:     "What Primary Storage will be used to deploy VCF 9.0?",
					Category: "Storage",
					Kind:     KindSelect,
					Options: []Option{
						{Value: "vSAN ESA", Result: pass(canDeploy)},
						{Value: "vSAN OSA", Result: pass(canDeploy)},
						{Value: "Fibre Channel(FC)", Result: pass(canDeploy)},
						{Value: "NFS", Result: pass(canDeploy)},
						{Value: "Other", Result: blocker("You cannot Deploy VCF 9.0 with any other type of Storage Protocol vSAN ESA, vSAN OSA, Fibre Channel(FC), NFS")},
					},
				},
				yesNo("gf-min-hosts", "Environment",
					"Have you confirmed that a minimum of 4 HCL-compliant ESXi hosts are available for the management domain?",
					pass("The minimum host count for the management domain is met."),
					blocker("You cannot proceed. A minimum of 4 ESXi hosts is required for the VCF Management Domain.")),
				yesNo("gf-redundant-switches", "Networking",
					"Are redundant physical network switches (e.g., ToR switches) in place for all VCF host connections?",
					pass("Redundant networking hardware is in place, reducing single points of failure."),
					caution("Deployment can proceed, but this is a high-risk configuration. Redundant switches are strongly recommended for production. -- Caution")),
				yesNo("gf-vlan-planning", "Networking",
					"Have all required VLANs (Management, vSAN, vMotion, etc.) and their corresponding subnets/IP pools been planned and documented?",
					pass("IP and VLAN planning is complete, which is a critical step for a successful bring-up."),
					blocker("You cannot proceed. Complete and document all IP and VLAN planning before starting the deployment.")),
				yesNo("gf-ntp", "Environment",
					"Are NTP servers available on the network, and have all planned components been configured for time synchronization?",
					pass("Proper time synchronization is configured, which is essential for stable operations."),
					blocker("You cannot proceed. Consistent NTP is mandatory for all VCF components.")),
				yesNo("gf-dns", "Environment",
					"Has DNS been configured with both Forward (A) and Reverse (PTR) lookup records for all planned VCF components (SDDC Manager, vCenter, NSX, Hosts)?",
					pass("DNS is correctly configured, which is required for component communication."),
					blocker("You cannot proceed. Fully functional DNS with both forward and reverse lookups is mandatory.")),
				yesNo("gf-software", "Software",
					"Have all required VCF 9.0 software components (Cloud Builder, ESXi ISOs, etc.) been downloaded from the Broadcom support portal?",
					pass("All necessary software is downloaded and ready for deployment."),
					blocker("Please download all required software from the VCF 9.0 Bill of Materials (BOM) before proceeding.")),
				yesNo("gf-licenses", "Licensing",
					"Are all necessary VCF 9.0 licenses (VCF, vSphere, vSAN, NSX) available and documented?",
					pass("All required licenses are available."),
					blocker("You cannot deploy VCF 9.0 without the appropriate licenses. Please acquire them first.")),
				yesNo("gf-backup", "Operations",
					"Do you have a documented backup strategy for critical components (SDDC Manager, vCenter, NSX) that will be implemented immediately after deployment?",
					pass("A day-one backup strategy is planned, which is critical for operational readiness."),
					caution("It is highly recommended to have a backup plan ready before deployment to avoid data loss risk. -- Caution")),
			},
		}},
	}
}

func brownfieldPath() Path {
	return Path{
		ID:          PathBrownfield,
		Title:       "Path 2: Upgrade Existing VMware Environment to VCF 9 (Brownfield)",
		Description: "Convert your existing VMWare vSphere environment into a full VCF 9 Fleet, leveraging your current hardware.",
		Customer: []Consideration{
			{Icon: "⚠️", Text: "Caution: The conversion process is complex and intrusive. A failure during a critical step can lead to significant downtime."},
			{Icon: "💰", Text: "Lower Hardware Cost: Leverages existing hardware, avoiding a major new purchase."},
			{Icon: "📋", Text: "Mandatory Prerequisites: This path is not possible unless all remediation steps (Break ELM, Convert to vLCM Images) are completed."},
		},
		Delivery: []DeliverySection{
			{Title: "Tools Involved", Icon: "🔧", Items: []string{"vCenter Installer & Lifecycle Manager", "VCF Installer", "VCF Operations & Import Tool", "Aria Suite Lifecycle (if applicable)"}},
			{Title: "Design Options", Icon: "🗺️", Items: []string{"Appliance Model: Simple or HA", "Fleet Topology: Single-Site or Multi-Site"}},
			{Title: "Key Implementation Activities", Icon: "✅", Items: []string{"Perform sequenced Aria/vSphere upgrades", "Remediate: Break ELM & Remove IWA", "Convert clusters to vLCM Images", "Run pre-checks & execute conversion", "License & Validate"}},
		},
		Base: []QuestionSet{{
			Prefix: PrefixGeneric,
			Title:  "Generic Questions (All Brownfield Paths)",
			Questions: []Question{
				yesNo("g-hw", "Hardware",
					"Have you reviewed the Broadcom Compatibility Guide (BCG) Hardware List for any incompatibility issues (https://compatibilityguide.broadcom.com/)? Yes or No",
					pass(canUpgrade),
					blocker("You cannot upgrade to VCF 9.0, because of incompatibility hardware")),
				yesNo("g-vxrail", "Hardware",
					"Is VXRAIL hardware deployed in environment and apart VCF Upgrade Plan? Yes or No",
					blocker("You cannot upgrade to VCF 9.0, because VXRAIL Hardware is not supported for upgrade"),
					pass(canUpgrade)),
				yesNo("g-powerflex", "Hardware",
					"Is Dell PowerFlex being used in environment? Yes or No",
					caution("You can upgrade to VCF 9.0, but be aware that RPQ is required for storage. -- Caution"),
					pass(canUpgrade)),
				yesNo("g-vcd", "Integration",
					"Is vCloud Director being used in the environment? Yes or No",
					blocker("You cannot upgrade to VCF 9.0, because vCloud Director is not supported in VCF 9"),
					pass(canUpgrade)),
				yesNo("g-vvol", "Hardware",
					"Is vVOL storage being used in environment?",
					caution("You can upgrade to VCF 9.0, but be aware that vVOLs will be deprecated in a future release. -- Caution"),
					pass(canUpgrade)),
				yesNo("g-firmware", "Hardware", firmwareQ,
					pass(firmwareYes),
					blocker(firmwareNo)),
				yesNo("g-backup", "Operations", backupQ,
					pass(backupYes),
					caution(backupNo)),
			},
		}},
		SubPaths: []QuestionSet{
			{
				Prefix: PrefixVSphere,
				Title:  "vSphere",
				Questions: []Question{
					yesNo("vs-ver", "Core vSphere", "Is vSphere on 8.x or above?",
						pass(canUpgrade),
						blocker("You cannot upgrade to VCF 9.0. Upgrade to 8.x or above. If hardware is not compatible, then new hardware will need to be acquired.")),
					yesNo("vs-elm", "Core vSphere", "Is Enhanced Linked Mode (ELM)/Shared vSphere SSO Domain being used?",
						caution("You can upgrade to VCF 9.0, but be aware that the ELM ring for each vCenter will need to be broken before going to VCF. (https://knowledge.broadcom.com/external/article/370062/splitting-enhanced-linked-mode-elm.html) -- Caution"),
						pass(canUpgrade)),
					yesNo("vs-iwa", "Core vSphere", "Is IWA (Integrated Windows Authentication) being used?",
						caution("You can upgrade to VCF 9.0, but be aware that vCenter(s) will need to be updated to a new Identity Source. -- Caution"),
						pass(canUpgrade)),
					yesNo("vs-vum", "Core vSphere", "Is vSphere Update Manager (VUM) being used in environment?",
						caution("You can upgrade to VCF 9.0, be aware that all clusters will need to be converted to VMware Lifecycle Manager(vLCM). (https://techdocs.broadcom.com/us/en/vmware-cis/vsphere/vsphere/8-0/managing-host-and-cluster-lifecycle-8-0/using-images-to-install-and-update-esxi-hosts-and-clusters/switching-from-baselines-to-images.html#GUID-B54663AB-B1D1-4E87-8B8C-76FF2998A477-en) -- Caution"),
						pass(canUpgrade)),
					yesNo("vs-vcha", "Core vSphere", "Is vCenter High Availability Configured on vCenter(s)?",
						caution("You can upgrade to VCF 9.0, be aware that vCenter High Availability will need to be removed and added back after VCF upgrade is complete -- Caution"),
						pass(canUpgrade)),
					yesNo("vs-hp", "Core vSphere", "Are vSphere Host Profiles being used?",
						caution("You can upgrade to VCF 9.0, but be aware that Host Profiles will be deprecated in a future release. -- Caution"),
						pass(canUpgrade)),
					yesNo("vs-dload", "Core vSphere", "Are OBTU or UMDS download tools being used for vSphere in the current environment?",
						caution("You can upgrade to VCF 9.0, but be aware that OBTU and UMDS will be deprecated in a future release. -- Caution"),
						pass(canUpgrade)),
					yesNo("vs-auto", "Core vSphere", "Is vCenter auto-deploy being used today?",
						caution("You can upgrade to VCF 9.0, but be aware that auto-deploy will be deprecated in a future release. -- Caution"),
						pass(canUpgrade)),
				},
			},
			{
				Prefix: PrefixNSX,
				Title:  "NSX",
				Questions: []Question{
					yesNo("nsx-vsmgmt", "NSX", "Is vCenter that will be upgrade to be VCF Management Domain connected to a NSX Manager?",
						blocker("You cannot upgrade to VCF 9.0, vCenter with NSX Manager(s) cannot be upgraded to a management domain but can but imported as a workload domain."),
						pass(canUpgrade)),
					yesNo("nsx-elm1", "NSX", "Is NSX Manager(s) connected to two or more vCenters with ELM configured?",
						blocker("You cannot upgrade to VCF 9.0, vCenter with ELM configured and connected to NSX Manager(s) cannot be imported as a workload domain."),
						pass(canUpgrade)),
					yesNo("nsx-fed", "NSX", "Is NSX configured with NSX Federation?",
						caution("You can upgrade to VCF 9.0, but be aware this could have impact on networks supported in NSX Federation, NSX Firewall Rules, Security Groups, etc.. -- Caution"),
						pass(canUpgrade)),
					yesNo("nsx-bare", "NSX", "Are there any Bare Metal Edges deployed?",
						caution("You can upgrade to VCF 9.0, but be aware that all Bare Metal NSX Edges will need to be removed and replaced wtih new Virtual Edges. -- Caution"),
						pass(canUpgrade)),
				},
			},
			{
				Prefix: PrefixAriaLM,
				Title:  "Aria Suite LM",
				Questions: []Question{
					yesNo("alm-ver", "Aria", "Is Aria Suite Lifecycle Manager at version 8.18 or above?",
						caution("You can upgrade to VCF 9.0, but be aware that Patch 2 will need to be applied before upgrade of VCF 9.0 -- Caution"),
						caution("You can upgrade to VCF 9.0, but be aware that Aria Suite Lifecycle Manager will need to be upgraded to version 8.18 Patch 2. -- Caution")),
				},
			},
			{
				Prefix: PrefixAriaOps,
				Title:  "Aria Operations",
				Questions: []Question{
					yesNo("aops-ver", "Aria", "Is Aria Operations at version 8.18.x or above?",
						pass(canUpgrade),
						caution("You can upgrade to VCF 9.0, but be aware Aria Operations will need to be upgraded to 8.18 or above. -- Caution")),
					yesNo("aops-multi", "Aria", "Is there more than one Aria Operations Deployed?",
						caution("You can upgrade to VCF 9.0, but be aware that a VCF Fleet only supports one Aria Operations Instance, so customer will have to decided on multiple fleets, consolidation of instance or have operations not managed by a fleet. -- Caution"),
						pass(canUpgrade)),
				},
			},
			{
				Prefix: PrefixAriaAuto,
				Title:  "Aria Automation",
				Questions: []Question{
					yesNo("aauto-ver", "Aria", "Is Aria Automation on 8.18.x or above?",
						pass(canUpgrade),
						caution("You can upgrade to VCF 9.0, but be aware Aria Automation will need to be upgraded to 8.18 or above. -- Caution")),
					yesNo("aauto-multi", "Aria", "Is there more than one Aria Automation Deployed?",
						caution("You can upgrade to VCF 9.0, but be aware of a VCF Fleet only supports one Automation Instances in integrated mode, all other instances will be none integrated instances( still can be Upgrades through Fleet Manager but not certificate or password managed -- Caution"),
						pass(canUpgrade)),
				},
			},
			{
				Prefix: PrefixAriaOpsNetworks,
				Title:  "Aria Operations for Networks",
				Questions: []Question{
					yesNo("aops-net-ver", "Aria", "Is Aria Operations for Networks on 6.13 or above?",
						pass(deployVCF),
						blocker("Upgrade Aria Operations for Networks to 6.13 or higher")),
					yesNo("aops-net-multi", "Aria", "Is there more than one Aria Operations for Networks Deployed?",
						caution("Deploy VCF but be aware of a VCF Fleet only supports one Aria Operations for Networks Instances being added to the VCF Fleet , so customer will have to decided on multiple fleets or have operations for networks not managed by a Fleet -- Caution"),
						pass(deployVCF)),
				},
			},
			{
				Prefix: PrefixAriaOpsLogs,
				Title:  "Aria Operations for Logs",
				Questions: []Question{
					yesNo("aops-logs-multi", "Aria", "Is there more than one Aria Operations for Logs Deployed?",
						caution("Deploy VCF but be aware of Aria Operations Logs does not get upgrade, it is new appliances, customers can keep old log appliances and migrate to new appliances over time -- Caution"),
						pass(deployVCF)),
				},
			},
		},
	}
}

func vcfUpgradePath() Path {
	return Path{
		ID:          PathVCFUpgrade,
		Title:       "Path 3: Upgrade Existing VCF 5.x to VCF 9.0",
		Description: "Upgrade your existing VCF 5.x environment directly to VCF 9.0. This path is for customers already running VCF and seeking an in-place version upgrade.",
		Customer: []Consideration{
			{Icon: "⚡", Text: "Direct Upgrade Path: A more streamlined upgrade if your current VCF version is 5.0 or higher."},
			{Icon: "🛡️", Text: "Requires Prerequisites: Ensure all components meet the minimum version and configuration requirements for VCF 9.0 before starting."},
			{Icon: "⏱️", Text: "Downtime Considerations: Plan for potential downtime during upgrade sequences for various components (e.g., SDDC Manager, vCenter, NSX, Workload Domains)."},
		},
		Delivery: []DeliverySection{
			{Title: "Tools Involved", Icon: "🔧", Items: []string{"SDDC Manager", "vCenter Server Lifecycle Manager", "NSX-T Manager"}},
			{Title: "Design Options", Icon: "🗺️", Items: []string{"Review VCF 9.0 reference architecture updates", "Assess networking and storage compatibility and changes", "Plan for new features and components in VCF 9.0"}},
			{Title: "Key Implementation Activities", Icon: "✅", Items: []string{"Review VCF 9.0 upgrade bundles and release notes", "Execute pre-checks", "Perform sequenced component upgrades via SDDC Manager (e.g., SDDC Manager, vCenter, NSX, vSphere, Workload Domains)", "Validate upgraded deployment and post-upgrade health checks"}},
		},
		Base: []QuestionSet{{
			Prefix: PrefixVCFUpgrade,
			Title:  "VCF 5.x to VCF 9.0 Upgrade Questionnaire",
			Questions: []Question{
				yesNo("vcf3-hcl", "Hardware", hclQ,
					pass(canUpgrade),
					blocker(cannotUpgrade)),
				yesNo("vcf3-version", "VCF Version", "Is Customer running VCF 5.0 or higher? Yes or No",
					pass(canUpgrade),
					blocker(cannotUpgrade)),
				yesNo("vcf3-vum", "Lifecycle Management", "Is vSphere Update Manager (VUM) being used in environment?",
					caution("You can upgrade to VCF 9.0 but be aware that all clusters will need to be converted to VMware Lifecycle Manager(vLCM) -- Caution"),
					pass(canUpgrade)),
				yesNo("vcf3-firmware", "Hardware", firmwareQ,
					pass(firmwareYes),
					blocker(firmwareNo)),
				yesNo("vcf3-backup", "Operations", backupQ,
					pass(backupYes),
					caution(backupNo)),
			},
		}},
	}
}
